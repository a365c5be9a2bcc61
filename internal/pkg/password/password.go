// Package password hashes the admin credential with bcrypt.
package password

import (
	"golang.org/x/crypto/bcrypt"

	"trip-booking/internal/pkg/errs"
)

var (
	ErrHashingFailed    = errs.New("password hashing failed")
	ErrComparisonFailed = errs.New("password comparison failed")
	ErrInvalidPassword  = errs.New("invalid password")
)

const (
	DefaultCost = bcrypt.DefaultCost
	MinLength   = 8
	// MaxLength is bcrypt's input limit; longer input would be silently truncated.
	MaxLength = 72
)

func HashPassword(password string) (string, error) {
	if len(password) < MinLength || len(password) > MaxLength {
		return "", errs.Mark(errs.Newf("password length %d outside %d-%d", len(password), MinLength, MaxLength), ErrInvalidPassword)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", errs.Mark(err, ErrHashingFailed)
	}
	return string(hashed), nil
}

// ComparePassword returns ErrComparisonFailed on a mismatch and ErrInvalidPassword
// when either side is empty, so an unset admin hash never authenticates.
func ComparePassword(hashedPassword, password string) error {
	if hashedPassword == "" || password == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrComparisonFailed
	default:
		return errs.Wrap(err, "compare password hash")
	}
}

// Cost reports the work factor of an existing hash.
func Cost(hashedPassword string) (int, error) {
	cost, err := bcrypt.Cost([]byte(hashedPassword))
	if err != nil {
		return 0, errs.Wrap(err, "read bcrypt cost")
	}
	return cost, nil
}
