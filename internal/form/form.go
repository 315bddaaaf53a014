package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/guttosm/homeloan/internal/calculator"
	"github.com/guttosm/homeloan/internal/domain/models"
)

// Field names accepted by the loan form, the JSON API and the batch CSV header.
const (
	FieldLoanAmount    = "loan_amount"
	FieldInterestRate  = "interest_rate"
	FieldLoanTermYears = "loan_term_years"
)

// User-facing messages for the two validation failure kinds.
const (
	MsgInvalidInput  = "Invalid input. Please enter only numeric values."
	MsgOutOfRange    = "All values must be positive and non-zero."
	MsgCalculationNA = "Unable to calculate a payment for these values."
)

var (
	// ErrParse marks a field that is missing or not a valid number.
	ErrParse = errors.New("parse error")
	// ErrRange marks a field that parsed but violates its domain constraint.
	ErrRange = errors.New("range error")
)

// Values carries the raw form fields as submitted, before coercion.
type Values struct {
	LoanAmount    string
	InterestRate  string
	LoanTermYears string
}

// Getter is satisfied by url.Values.
type Getter interface {
	Get(key string) string
}

// ValuesFrom extracts the loan fields from any key/value source.
func ValuesFrom(g Getter) Values {
	return Values{
		LoanAmount:    g.Get(FieldLoanAmount),
		InterestRate:  g.Get(FieldInterestRate),
		LoanTermYears: g.Get(FieldLoanTermYears),
	}
}

// Parse coerces raw values into LoanTerms and enforces the domain ranges.
//
// Behavior:
//   - Surrounding whitespace is ignored.
//   - loan_amount and interest_rate accept decimals; loan_term_years must be an integer.
//   - Empty, non-numeric, NaN or infinite values fail with ErrParse.
//   - loan_amount <= 0, interest_rate < 0 or loan_term_years outside
//     1..calculator.MaxTermYears fail with ErrRange.
//
// Parse errors are reported before range errors, matching field order.
func Parse(v Values) (models.LoanTerms, error) {
	amount, err := parseDecimal(FieldLoanAmount, v.LoanAmount)
	if err != nil {
		return models.LoanTerms{}, err
	}
	rate, err := parseDecimal(FieldInterestRate, v.InterestRate)
	if err != nil {
		return models.LoanTerms{}, err
	}
	years, err := strconv.Atoi(strings.TrimSpace(v.LoanTermYears))
	if err != nil {
		return models.LoanTerms{}, fmt.Errorf("%s: %w", FieldLoanTermYears, ErrParse)
	}

	terms := models.LoanTerms{Principal: amount, AnnualRatePercent: rate, TermYears: years}
	if err := Validate(terms); err != nil {
		return models.LoanTerms{}, err
	}
	return terms, nil
}

// Validate checks the domain ranges of already-typed terms.
func Validate(t models.LoanTerms) error {
	switch {
	case t.Principal <= 0:
		return fmt.Errorf("%s: %w", FieldLoanAmount, ErrRange)
	case t.AnnualRatePercent < 0:
		return fmt.Errorf("%s: %w", FieldInterestRate, ErrRange)
	case t.TermYears <= 0, t.TermYears > calculator.MaxTermYears:
		return fmt.Errorf("%s: %w", FieldLoanTermYears, ErrRange)
	}
	return nil
}

// Message maps a validation or calculation error to the text shown to the user.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrParse):
		return MsgInvalidInput
	case errors.Is(err, ErrRange):
		return MsgOutOfRange
	default:
		return MsgCalculationNA
	}
}

func parseDecimal(field, raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s: %w", field, ErrParse)
	}
	return f, nil
}
