//go:build unit || e2e

// Package authtest issues admin tokens for tests, either directly with the
// configured secret or through the login endpoint.
package authtest

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"trip-booking/internal/handler/dto/request"
	"trip-booking/internal/handler/dto/response"
	"trip-booking/internal/pkg/clock"
	"trip-booking/internal/pkg/config"
	"trip-booking/internal/pkg/jwt"
	"trip-booking/tests/common/httptest"
)

const loginPath = "/api/auth/login"

type Tokens struct {
	secret   string
	duration time.Duration
}

func NewTokens(t *testing.T, cfg config.JWTConfig) *Tokens {
	t.Helper()
	d, err := time.ParseDuration(cfg.Duration)
	require.NoError(t, err)
	return &Tokens{secret: cfg.Secret, duration: d}
}

func (k *Tokens) Admin(t *testing.T) string {
	t.Helper()
	return k.Issue(t, "admin", jwt.RoleAdmin)
}

func (k *Tokens) Issue(t *testing.T, subject, role string) string {
	t.Helper()
	return k.issueAt(t, clock.NewRealClock(), k.duration, subject, role)
}

// Expired returns a token whose one hour lifetime ended an hour ago.
func (k *Tokens) Expired(t *testing.T, subject, role string) string {
	t.Helper()
	return k.issueAt(t, clock.NewMockClock(time.Now().Add(-2*time.Hour)), time.Hour, subject, role)
}

func (k *Tokens) issueAt(t *testing.T, clk clock.Clock, d time.Duration, subject, role string) string {
	t.Helper()
	token, _, err := jwt.NewService(k.secret, d, clk).GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

// Login signs in through the HTTP API and returns the access token.
func Login(t *testing.T, router *gin.Engine, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, loginPath,
		request.LoginRequest{Username: username, Password: password}, "")

	var resp response.LoginResponse
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &resp)
	require.NotEmpty(t, resp.AccessToken, "login response without access token")
	require.Equal(t, "Bearer", resp.TokenType)
	return resp.AccessToken
}
