package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alphabatem/common/context"
)

type JWTService struct {
	context.DefaultService

	AccessTokenDuration time.Duration
	jwtSecretKey        string
}

type CustomClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

const JWT_SVC = "jwt_svc"

// Tokens are stateless and live the full 30 days. There is no revocation
// list, so a password change does not invalidate outstanding tokens.
const AccessTokenTTL = 30 * 24 * time.Hour

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

func (svc JWTService) Id() string {
	return JWT_SVC
}

func (svc *JWTService) Configure(ctx *context.Context) error {
	svc.AccessTokenDuration = AccessTokenTTL
	svc.jwtSecretKey = os.Getenv("JWT_SECRET")
	if svc.jwtSecretKey == "" {
		return errors.New("JWT_SECRET is not set")
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *JWTService) Start() error {
	return nil
}

// VerifyJWTToken returns the embedded user id. Expired tokens report their
// own error so the API can answer with the distinct "expired" message.
func (svc *JWTService) VerifyJWTToken(jwtToken string) (string, error) {
	token, err := jwt.ParseWithClaims(jwtToken, &CustomClaims{}, svc.getJWTKey)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	if !token.Valid {
		return "", ErrTokenInvalid
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || claims.UserID == "" {
		return "", ErrTokenInvalid
	}

	return claims.UserID, nil
}

func (svc *JWTService) getJWTKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrTokenInvalid
	}

	return []byte(svc.jwtSecretKey), nil
}

func (svc *JWTService) GenerateToken(userID string) (string, error) {
	return svc.tokenWithTTL(userID, svc.AccessTokenDuration)
}

func (svc *JWTService) tokenWithTTL(userID string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := &CustomClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "QazKids",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(svc.jwtSecretKey))
}

func (svc *JWTService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("authorization header is missing")
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return "", errors.New("invalid authorization header format")
	}

	return authHeader[7:], nil
}
