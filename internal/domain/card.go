package domain

import (
	"strings"
	"time"
)

// Card holds the card data captured at authorization. It is kept for audit
// purposes and is never revalidated after the payment is created.
type Card struct {
	Number   string
	ExpMonth int
	ExpYear  int
	CVV      int
}

func (c Card) validateExpiration(now time.Time) error {
	if c.ExpMonth < 1 || c.ExpMonth > 12 {
		return NewCardValidationError("the card expiration date is invalid", "expirationDate")
	}

	// Years are four digits; two-digit years would need extra handling here.
	year, month := now.UTC().Year(), int(now.UTC().Month())
	if c.ExpYear < year || (c.ExpYear == year && c.ExpMonth < month) {
		return NewCardValidationError("the card is expired", "expirationDate")
	}
	return nil
}

func (c Card) validateCVV() error {
	// Four digit CVVs exist, but only three digit codes are accepted for now.
	if c.CVV < 100 || c.CVV > 999 {
		return NewCardValidationError("the card cvv is invalid", "cvv")
	}
	return nil
}

func (c Card) validateNumber() error {
	if c.Number == "" || !allDigits(c.Number) || len(c.Number) != 16 || !luhnValid(c.Number) {
		return NewCardValidationError("the card number is invalid", "cardNumber")
	}
	return nil
}

func allDigits(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool {
		return r < '0' || r > '9'
	}) == -1
}

// luhnValid implements the standard mod 10 checksum over a digit string.
func luhnValid(number string) bool {
	sum := 0
	alternate := false
	for i := len(number) - 1; i >= 0; i-- {
		n := int(number[i] - '0')
		if alternate {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}
		sum += n
		alternate = !alternate
	}
	return sum%10 == 0
}
