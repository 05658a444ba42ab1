// Package valueobject defines validated value types shared across the domain.
package valueobject

// PaymentMethod identifies how a purchase was paid.
type PaymentMethod string

// Cash-like payment methods. These always bill to the purchase month.
const (
	PaymentMethodCash PaymentMethod = "Dinheiro"
	PaymentMethodPix  PaymentMethod = "Pix"
)

// Card payment methods with a statement closing day.
const (
	PaymentMethodBradesco PaymentMethod = "Bradesco"
	PaymentMethodNubank   PaymentMethod = "Nubank"
	PaymentMethodItau     PaymentMethod = "Itaú"
)

// cardClosingDays maps each card to the day-of-month its statement closes.
// Purchases on or after the closing day roll to the next billing cycle.
// Cash-like methods are deliberately absent from this table.
var cardClosingDays = map[PaymentMethod]int{
	PaymentMethodBradesco: 5,
	PaymentMethodNubank:   5,
	PaymentMethodItau:     28,
}

// ClosingDay returns the statement closing day for a card method.
// The second return value is false for cash-like or unknown methods,
// which are billed to the purchase month.
func (m PaymentMethod) ClosingDay() (int, bool) {
	day, ok := cardClosingDays[m]
	return day, ok
}

// IsCard reports whether the method has a configured statement closing day.
func (m PaymentMethod) IsCard() bool {
	_, ok := cardClosingDays[m]
	return ok
}

// IsCashLike reports whether the method is one of the known immediate
// payment methods.
func (m PaymentMethod) IsCashLike() bool {
	return m == PaymentMethodCash || m == PaymentMethodPix
}

// KnownPaymentMethods lists every payment method the entry form offers.
func KnownPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodPix,
		PaymentMethodBradesco,
		PaymentMethodNubank,
		PaymentMethodItau,
	}
}

// CardPaymentMethods lists the methods with a configured closing day.
func CardPaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodBradesco,
		PaymentMethodNubank,
		PaymentMethodItau,
	}
}
