//go:build unit || e2e

package builder

import (
	reqdto "trip-booking/internal/handler/dto/request"
)

// LoginRequest returns admin credentials that pass request validation.
func LoginRequest(opts ...func(*reqdto.LoginRequest)) reqdto.LoginRequest {
	req := reqdto.LoginRequest{Username: "admin", Password: "password123"}
	for _, opt := range opts {
		opt(&req)
	}
	return req
}
