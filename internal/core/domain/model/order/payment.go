package order

import (
	"fmt"

	"waiter/internal/pkg/errs"
)

// PaymentMethod records how a paid order was settled.
type PaymentMethod int

const (
	// UnknownMethod represents an invalid or unset payment method.
	UnknownMethod PaymentMethod = iota

	// Card payment at the table or counter.
	Card

	// Cash payment.
	Cash
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		Card: "CARD",
		Cash: "CASH",
	}
}

// PaymentMethodFromString parses a payment method name as used on the wire.
// An empty string is reported as a missing value, anything else unrecognized
// as an invalid one.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	if s == "" {
		return UnknownMethod, errs.NewValueIsRequiredError("payment method")
	}
	for method, name := range getPaymentMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return UnknownMethod, errs.NewValueIsInvalidErrorWithCause(
		"payment method",
		fmt.Errorf("%q is not a valid payment method, allowed values: CARD or CASH", s),
	)
}

// Validate checks if the PaymentMethod value is valid.
func (p PaymentMethod) Validate() error {
	if _, ok := getPaymentMethodStrings()[p]; !ok {
		return errs.NewValueIsRequiredError("payment method")
	}
	return nil
}

// String returns the wire name of the payment method, or "UNKNOWN" for
// invalid values. Implements the fmt.Stringer interface.
func (p PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}
