package usecase

import (
	"trip-booking/internal/pkg/jwt"
)

//go:generate mockgen -source=token_validator.go -destination=../../tests/mock/usecase/mock_token_validator.go -package=usecasemock

// TokenValidator resolves an admin bearer token to its subject and role.
type TokenValidator interface {
	ValidateToken(tokenString string) (subject string, role string, err error)
}

type jwtTokenValidator struct {
	service *jwt.Service
}

func NewTokenValidator(service *jwt.Service) TokenValidator {
	return jwtTokenValidator{service: service}
}

func (v jwtTokenValidator) ValidateToken(tokenString string) (string, string, error) {
	claims, err := v.service.ValidateToken(tokenString)
	if err != nil {
		return "", "", err
	}
	return claims.Subject, claims.Role, nil
}
