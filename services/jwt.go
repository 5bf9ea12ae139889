package services

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/retroden/arcade_api/shared"
)

// JWTService mints and verifies the short-lived tokens that gate catalog
// administration. There is no player authentication in this system.
type JWTService struct {
	context.DefaultService

	AdminTokenDuration time.Duration
	jwtSecretKey       string
	adminAPIKey        string
}

type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

const JWT_SVC = "jwt_svc"

const RoleAdmin = "admin"

func (svc JWTService) Id() string {
	return JWT_SVC
}

func (svc *JWTService) Configure(ctx *context.Context) error {
	svc.AdminTokenDuration = 12 * time.Hour
	svc.jwtSecretKey = os.Getenv("JWT_ADMIN_SECRET")
	svc.adminAPIKey = os.Getenv("ADMIN_API_KEY")
	return svc.DefaultService.Configure(ctx)
}

func (svc *JWTService) Start() error {
	return nil
}

// MintAdminToken exchanges the shared operator key for a bearer token.
func (svc *JWTService) MintAdminToken(apiKey string) (string, error) {
	if svc.adminAPIKey == "" || apiKey != svc.adminAPIKey {
		return "", errors.New("invalid admin API key")
	}

	now := time.Now()
	claims := AdminClaims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(svc.AdminTokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(svc.jwtSecretKey))
}

// VerifyAdminToken validates the token and confirms the admin role.
func (svc *JWTService) VerifyAdminToken(jwtToken string) error {
	token, err := jwt.ParseWithClaims(jwtToken, &AdminClaims{}, svc.getJWTKey)
	if err != nil || !token.Valid {
		return errors.New("unsupported JWT format")
	}

	claims, ok := token.Claims.(*AdminClaims)
	if !ok || claims == nil {
		return errors.New("unsupported JWT format")
	}

	if claims.Role != RoleAdmin {
		return errors.New("token lacks admin role")
	}

	expTime, err := claims.GetExpirationTime()
	if err != nil {
		return fmt.Errorf("failed to get expiration time: %v", err)
	}
	if expTime.Before(time.Now()) {
		return errors.New("token has expired")
	}

	return nil
}

func (svc *JWTService) getJWTKey(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return []byte(svc.jwtSecretKey), nil
}

// RequireAdmin guards catalog mutation and seeding endpoints.
func (svc *JWTService) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		token, err := svc.ExtractTokenFromHeader(authHeader)
		if err != nil {
			return shared.ResponseUnauthorized(c)
		}

		if err := svc.VerifyAdminToken(token); err != nil {
			return shared.ResponseUnauthorized(c)
		}

		return c.Next()
	}
}

func (svc *JWTService) ExtractTokenFromHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
