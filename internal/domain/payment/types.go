package payment

type Method string

const (
	MethodMercadoPago Method = "mercadopago"
	MethodTransfer    Method = "transfer"
)

func (m Method) String() string {
	return string(m)
}

func (m Method) IsValid() bool {
	switch m {
	case MethodMercadoPago, MethodTransfer:
		return true
	default:
		return false
	}
}
