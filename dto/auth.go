package dto

// ==================== AUTHENTICATION REQUEST DTOs ====================

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50" example:"aruzhan"`
	Email    string `json:"email" validate:"required,email" example:"aruzhan@example.com"`
	Password string `json:"password" validate:"required,min=6" example:"secret123"`
	FullName string `json:"full_name,omitempty" example:"Aruzhan S."`
	Age      *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=120" example:"9"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=student parent teacher admin" example:"student"`
}

func (r RegisterRequest) Validate() error {
	return GetValidator().Struct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"aruzhan@example.com"`
	Password string `json:"password" validate:"required" example:"secret123"`
}

func (l LoginRequest) Validate() error {
	return GetValidator().Struct(l)
}

// ==================== AUTHENTICATION RESPONSE DTOs ====================

type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"bearer"`
	ExpiresIn   int64  `json:"expires_in" example:"2592000"`
}
