package constants

// PaymentMode is how a bill was settled at the counter.
type PaymentMode int

const (
	PaymentModeUnknown PaymentMode = iota
	PaymentModeCash
	PaymentModeUPI
	PaymentModeCard
)

func (m PaymentMode) String() string {
	switch m {
	case PaymentModeCash:
		return "Cash"
	case PaymentModeUPI:
		return "UPI"
	case PaymentModeCard:
		return "Card"
	default:
		return "Unknown"
	}
}

var paymentModeMap = map[string]PaymentMode{
	"Cash": PaymentModeCash,
	"UPI":  PaymentModeUPI,
	"Card": PaymentModeCard,
}

func ParsePaymentMode(s string) PaymentMode {
	if m, ok := paymentModeMap[s]; ok {
		return m
	}
	return PaymentModeUnknown
}

// PaymentModes lists every accepted payment mode.
func PaymentModes() []PaymentMode {
	return []PaymentMode{PaymentModeCash, PaymentModeUPI, PaymentModeCard}
}
