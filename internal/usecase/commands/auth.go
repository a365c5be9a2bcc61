package commands

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"time"

	"trip-booking/internal/pkg/errs"
	"trip-booking/internal/pkg/jwt"
	"trip-booking/internal/pkg/password"
)

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/mock_auth.go -package=commandsmock

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type AdminAccount struct {
	Username     string
	PasswordHash string
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   time.Time
}

type AuthCommands interface {
	Login(ctx context.Context, username, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	admin      AdminAccount
	jwtService *jwt.Service
}

func NewAuthCommands(admin AdminAccount, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		admin:      admin,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, username, pass string) (*LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.admin.Username)) == 1
	// Both checks run on every attempt.
	passErr := password.ComparePassword(a.admin.PasswordHash, pass)
	if !userOK || passErr != nil {
		if a.admin.PasswordHash == "" {
			slog.Warn("admin login attempted but no password hash is configured")
		}
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.jwtService.GenerateToken(a.admin.Username, jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &LoginResult{AccessToken: token, ExpiresAt: expiresAt}, nil
}
