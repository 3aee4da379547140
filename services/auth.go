package services

import (
	"errors"
	"fmt"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/qazkids/qazkids_api/dto"
	"github.com/qazkids/qazkids_api/model"
	"github.com/qazkids/qazkids_api/shared"
)

// AuthService owns registration, login and the request auth middleware.
type AuthService struct {
	context.DefaultService

	sqlSvc *PostgresService
	jwtSvc *JWTService
}

const AUTH_SVC = "auth_svc"

func (svc AuthService) Id() string {
	return AUTH_SVC
}

func (svc *AuthService) Configure(ctx *context.Context) error {
	return svc.DefaultService.Configure(ctx)
}

func (svc *AuthService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.jwtSvc = svc.Service(JWT_SVC).(*JWTService)
	return nil
}

func (svc *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (svc *AuthService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (svc *AuthService) Register(req dto.RegisterRequest) (*dto.TokenResponse, error) {
	existing, err := svc.sqlSvc.Users().GetUserByEmailOrUsername(req.Email, req.Username)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewConflictError(fmt.Errorf("duplicate user"), "Email or username already registered")
	}

	role := req.Role
	if role == "" {
		role = shared.RoleStudent
	}
	if !shared.ValidRole(role) {
		return nil, shared.NewBadRequestError(fmt.Errorf("invalid role %q", role), "Invalid role specified")
	}

	hash, err := svc.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Age:          req.Age,
		Role:         role,
		IsActive:     true,
	}

	if _, err := svc.sqlSvc.Users().CreateUser(user); err != nil {
		return nil, err
	}

	return svc.tokenResponse(user.ID)
}

func (svc *AuthService) Login(req dto.LoginRequest) (*dto.TokenResponse, error) {
	// Unknown email and wrong password answer identically so the response
	// never reveals which check failed.
	user, err := svc.sqlSvc.Users().GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewUnauthorizedError(err, "Invalid email or password")
		}
		return nil, err
	}

	if !svc.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, shared.NewUnauthorizedError(fmt.Errorf("password mismatch"), "Invalid email or password")
	}

	if err := svc.sqlSvc.Users().TouchLastActive(user.ID); err != nil {
		return nil, err
	}

	return svc.tokenResponse(user.ID)
}

func (svc *AuthService) tokenResponse(userID string) (*dto.TokenResponse, error) {
	token, err := svc.jwtSvc.GenerateToken(userID)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(svc.jwtSvc.AccessTokenDuration.Seconds()),
	}, nil
}

// RequiredAuth resolves the bearer token to a user record and stores it in
// the request locals. A token whose user no longer exists answers 404, not
// 401: the token itself was valid.
func (svc *AuthService) RequiredAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		token, err := svc.jwtSvc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.NewUnauthorizedError(err, "Not authenticated")
		}

		userID, err := svc.jwtSvc.VerifyJWTToken(token)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				return shared.NewUnauthorizedError(err, "Token expired")
			}
			return shared.NewUnauthorizedError(err, "Invalid token")
		}

		user, err := svc.sqlSvc.Users().GetUser(userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return shared.NewNotFoundError(err, "User not found")
			}
			return err
		}

		c.Locals(shared.UserID, user.ID)
		c.Locals(shared.UserRole, user.Role)
		c.Locals(shared.Username, user.Username)
		return c.Next()
	}
}

// RequireRole gates a route to the given roles; run it after RequiredAuth.
func (svc *AuthService) RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(shared.UserRole).(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return shared.NewForbiddenError(fmt.Errorf("role %q not permitted", role), "Permission denied")
	}
}
