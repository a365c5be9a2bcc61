package reservation

import (
	"crypto/rand"
	"errors"
	"math/big"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	codeSuffixLength = 6
	codeAlphabet     = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	MaxNameLength    = 120
	MaxPhoneLength   = 40
)

var (
	ErrInvalidCode    = errors.New("invalid reservation code")
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrInvalidName    = errors.New("invalid holder name")
	ErrInvalidEmail   = errors.New("invalid holder email")
	ErrInvalidPhone   = errors.New("invalid holder phone")

	codePattern = regexp.MustCompile(`^[A-Z0-9]{2,10}-[A-Z0-9]{6}$`)
	depositRate = decimal.NewFromFloat(0.5)
)

// Code is the human-facing reservation identifier, e.g. TRIP-7KQ2XM. It is
// also the external reference handed to the payment gateway.
type Code struct {
	value string
}

func NewCode(s string) (Code, error) {
	v := strings.ToUpper(strings.TrimSpace(s))
	if !codePattern.MatchString(v) {
		return Code{}, ErrInvalidCode
	}
	return Code{value: v}, nil
}

func (c Code) String() string {
	return c.value
}

func (c Code) IsZero() bool {
	return c.value == ""
}

type CodeGenerator interface {
	Generate() (Code, error)
}

type RandomCodeGenerator struct {
	Prefix string
}

func NewRandomCodeGenerator(prefix string) *RandomCodeGenerator {
	return &RandomCodeGenerator{Prefix: strings.ToUpper(prefix)}
}

func (g *RandomCodeGenerator) Generate() (Code, error) {
	var sb strings.Builder
	sb.WriteString(g.Prefix)
	sb.WriteByte('-')
	limit := big.NewInt(int64(len(codeAlphabet)))
	for range codeSuffixLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return Code{}, err
		}
		sb.WriteByte(codeAlphabet[n.Int64()])
	}
	return NewCode(sb.String())
}

// Money is a non-negative amount held at cent precision.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: d.Round(2)}, nil
}

func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(d)
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Decimal() decimal.Decimal { return m.amount }
func (m Money) String() string           { return m.amount.StringFixed(2) }
func (m Money) IsZero() bool             { return m.amount.IsZero() }
func (m Money) IsPositive() bool         { return m.amount.IsPositive() }

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub floors at zero.
func (m Money) Sub(other Money) Money {
	d := m.amount.Sub(other.amount)
	if d.IsNegative() {
		return Zero()
	}
	return Money{amount: d}
}

func (m Money) Mul(n int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(n))).Round(2)}
}

func (m Money) Min(other Money) Money {
	if other.amount.LessThan(m.amount) {
		return other
	}
	return m
}

func (m Money) Equal(other Money) bool              { return m.amount.Equal(other.amount) }
func (m Money) LessThan(other Money) bool           { return m.amount.LessThan(other.amount) }
func (m Money) GreaterThanOrEqual(other Money) bool { return m.amount.GreaterThanOrEqual(other.amount) }

// DepositFor returns 50% of total, rounded half-up to cents.
func DepositFor(total Money) Money {
	return Money{amount: total.amount.Mul(depositRate).Round(2)}
}

type Holder struct {
	name  string
	email string
	phone string
}

func NewHolder(name, email, phone string) (Holder, error) {
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return Holder{}, ErrInvalidName
	}
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return Holder{}, ErrInvalidEmail
	}
	phone = strings.TrimSpace(phone)
	if utf8.RuneCountInString(phone) > MaxPhoneLength {
		return Holder{}, ErrInvalidPhone
	}
	return Holder{name: name, email: email, phone: phone}, nil
}

// ReconstructHolder skips validation for values loaded from storage.
func ReconstructHolder(name, email, phone string) Holder {
	return Holder{name: name, email: email, phone: phone}
}

func (h Holder) Name() string  { return h.name }
func (h Holder) Email() string { return h.email }
func (h Holder) Phone() string { return h.phone }
