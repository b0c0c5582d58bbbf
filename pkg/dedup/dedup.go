package dedup

import (
	"crypto/sha512"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// missingIBANMarker keeps the key shape stable when the bank omits the payer
// account.
const missingIBANMarker = "-"

// Key computes the deduplication key for one normalized transaction. Two
// records with the same key are the same real-world payment, regardless of
// which acquisition path delivered them.
func Key(
	bookingDate time.Time,
	payerIBAN string,
	amount decimal.Decimal,
	currency string,
	description string,
) string {
	iban := strings.ToUpper(strings.ReplaceAll(payerIBAN, " ", ""))
	if iban == "" {
		iban = missingIBANMarker
	}

	raw := strings.Join([]string{
		bookingDate.Format(time.DateOnly),
		iban,
		amount.String(),
		strings.ToUpper(currency),
		NormalizeDescription(description),
	}, "|")

	return HashKey(raw)
}

// NormalizeDescription collapses whitespace and case so trivial formatting
// differences between exports do not defeat deduplication.
func NormalizeDescription(description string) string {
	return strings.ToLower(strings.Join(strings.Fields(description), " "))
}

func HashKey(bv string) string {
	shaImpl := sha512.New()
	shaImpl.Write([]byte(bv))

	return fmt.Sprintf("%x", shaImpl.Sum(nil))
}
