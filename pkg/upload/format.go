package upload

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"

	"github.com/openkita/finance/pkg/acquire"
)

// ColumnMap points each normalized field at a zero-based column of the bank's
// export. Optional fields use -1.
type ColumnMap struct {
	BookingDate int
	ValueDate   int
	PayerName   int
	PayerIBAN   int
	Description int
	Amount      int
	Currency    int
}

// FormatSpec describes one bank's statement layout. The layouts differ per
// bank and are configured by operators, not hard-coded.
type FormatSpec struct {
	Name            string
	Delimiter       rune
	HasHeader       bool
	DateLayout      string
	DecimalComma    bool
	DefaultCurrency string
	Columns         ColumnMap
}

// SparkasseCSV is the layout of the widespread MT940-derived CSV export.
func SparkasseCSV() FormatSpec {
	return FormatSpec{
		Name:            "sparkasse-csv",
		Delimiter:       ';',
		HasHeader:       true,
		DateLayout:      "02.01.2006",
		DecimalComma:    true,
		DefaultCurrency: "EUR",
		Columns: ColumnMap{
			BookingDate: 0,
			ValueDate:   1,
			PayerName:   2,
			PayerIBAN:   3,
			Description: 4,
			Amount:      5,
			Currency:    6,
		},
	}
}

func (f FormatSpec) mapRow(cells []string) (acquire.NormalizedTransaction, error) {
	bookingRaw, err := f.cell(cells, f.Columns.BookingDate, "booking date")
	if err != nil {
		return acquire.NormalizedTransaction{}, err
	}

	bookingDate, err := time.Parse(f.DateLayout, strings.TrimSpace(bookingRaw))
	if err != nil {
		return acquire.NormalizedTransaction{}, errors.Newf("failed to parse booking date %q", bookingRaw)
	}

	valueDate := bookingDate
	if f.Columns.ValueDate >= 0 {
		valueRaw, cellErr := f.cell(cells, f.Columns.ValueDate, "value date")
		if cellErr != nil {
			return acquire.NormalizedTransaction{}, cellErr
		}

		if strings.TrimSpace(valueRaw) != "" {
			valueDate, err = time.Parse(f.DateLayout, strings.TrimSpace(valueRaw))
			if err != nil {
				return acquire.NormalizedTransaction{}, errors.Newf("failed to parse value date %q", valueRaw)
			}
		}
	}

	amountRaw, err := f.cell(cells, f.Columns.Amount, "amount")
	if err != nil {
		return acquire.NormalizedTransaction{}, err
	}

	amount, err := f.parseAmount(amountRaw)
	if err != nil {
		return acquire.NormalizedTransaction{}, err
	}

	currency := f.DefaultCurrency
	if f.Columns.Currency >= 0 && f.Columns.Currency < len(cells) {
		if c := strings.TrimSpace(cells[f.Columns.Currency]); c != "" {
			currency = strings.ToUpper(c)
		}
	}

	return acquire.NormalizedTransaction{
		BookingDate: bookingDate,
		ValueDate:   valueDate,
		PayerName:   f.optionalCell(cells, f.Columns.PayerName),
		PayerIBAN:   f.optionalCell(cells, f.Columns.PayerIBAN),
		Description: f.optionalCell(cells, f.Columns.Description),
		Amount:      amount,
		Currency:    currency,
	}, nil
}

func (f FormatSpec) parseAmount(raw string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(raw)
	if f.DecimalComma {
		cleaned = strings.ReplaceAll(cleaned, ".", "")
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, errors.Newf("failed to parse amount %q", raw)
	}

	return amount, nil
}

func (f FormatSpec) cell(cells []string, idx int, field string) (string, error) {
	if idx < 0 || idx >= len(cells) {
		return "", errors.Newf("row has no %s column (index %d of %d)", field, idx, len(cells))
	}

	return cells[idx], nil
}

func (f FormatSpec) optionalCell(cells []string, idx int) string {
	if idx < 0 || idx >= len(cells) {
		return ""
	}

	return strings.TrimSpace(cells[idx])
}
