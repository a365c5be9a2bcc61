package reservation

type Status string

const (
	StatusPending     Status = "pending"
	StatusDepositPaid Status = "deposit_paid"
	StatusFullyPaid   Status = "fully_paid"
	StatusCancelled   Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusDepositPaid, StatusFullyPaid, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Basis selects how much of the balance a checkout charges.
type Basis string

const (
	BasisFull    Basis = "full"
	BasisDeposit Basis = "deposit"
)

func (b Basis) String() string {
	return string(b)
}

func ParseBasis(s string) (Basis, error) {
	switch b := Basis(s); b {
	case BasisFull, BasisDeposit:
		return b, nil
	default:
		return "", ErrInvalidBasis
	}
}
