package dto

import "time"

type UserResponse struct {
	ID        string    `json:"id" example:"0198b2cc-3c2d-7c1e-b1f0-5a4d2d6d9a11"`
	Username  string    `json:"username" example:"aruzhan"`
	Email     string    `json:"email" example:"aruzhan@example.com"`
	FullName  string    `json:"full_name,omitempty" example:"Aruzhan S."`
	Age       *int      `json:"age,omitempty" example:"9"`
	Role      string    `json:"role" example:"student"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at" example:"2023-01-01T00:00:00Z"`
}

// UpdateProfileRequest accepts an email for compatibility with older
// clients but the update path only applies full_name and age.
type UpdateProfileRequest struct {
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Age      *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=120"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
}

func (u UpdateProfileRequest) Validate() error {
	return GetValidator().Struct(u)
}
