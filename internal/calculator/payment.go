package calculator

import (
	"errors"
	"math"

	"github.com/guttosm/homeloan/internal/domain/models"
)

const (
	monthsPerYear = 12

	// MaxTermYears is the longest term accepted.
	MaxTermYears = 1000

	// minNormalRate is the smallest normal float64. Below it the interest
	// changes no payment by a measurable amount.
	minNormalRate = 0x1p-1022
)

var (
	// ErrInvalidTerm is returned for a term outside 1..MaxTermYears years.
	ErrInvalidTerm = errors.New("invalid term: must be between 1 and 1000 years")
	// ErrInvalidPrincipal is returned for a zero or negative principal.
	ErrInvalidPrincipal = errors.New("invalid principal: must be greater than zero")
	// ErrNegativeRate is returned for a negative annual rate.
	ErrNegativeRate = errors.New("invalid rate: must not be negative")
	// ErrNonFinite is returned when an input or the computed payment is NaN or infinite.
	ErrNonFinite = errors.New("non-finite value in payment calculation")
)

// MonthlyPayment returns the fixed monthly payment that fully repays principal
// over termYears at annualRatePercent (5 means 5%).
//
// Behavior:
//   - A zero rate divides the principal evenly over the periods.
//   - A positive rate applies the standard amortization formula
//     P * r(1+r)^n / ((1+r)^n - 1).
//   - The result is rounded to cents, half away from zero.
//
// Returns:
//   - float64: the monthly payment, finite and >= 0 on success.
//   - error: one of ErrInvalidTerm, ErrInvalidPrincipal, ErrNegativeRate, ErrNonFinite.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) (float64, error) {
	if !isFinite(principal) || !isFinite(annualRatePercent) {
		return 0, ErrNonFinite
	}
	if termYears <= 0 || termYears > MaxTermYears {
		return 0, ErrInvalidTerm
	}
	if principal <= 0 {
		return 0, ErrInvalidPrincipal
	}
	if annualRatePercent < 0 {
		return 0, ErrNegativeRate
	}

	monthlyRate := (annualRatePercent / 100) / monthsPerYear
	n := float64(termYears) * monthsPerYear

	var payment float64
	if monthlyRate < minNormalRate {
		payment = principal / n
	} else {
		// r(1+r)^n / ((1+r)^n - 1) == r / (1 - (1+r)^-n). The denominator goes
		// through Log1p/Expm1 so 1+r is never rounded.
		payment = principal * monthlyRate / -math.Expm1(-n*math.Log1p(monthlyRate))
	}

	payment = RoundCents(payment)
	if !isFinite(payment) {
		return 0, ErrNonFinite
	}
	return payment, nil
}

// Quote computes the monthly payment for terms along with the repayment totals.
func Quote(terms models.LoanTerms) (models.PaymentQuote, error) {
	payment, err := MonthlyPayment(terms.Principal, terms.AnnualRatePercent, terms.TermYears)
	if err != nil {
		return models.PaymentQuote{}, err
	}

	periods := terms.TermYears * monthsPerYear
	total := RoundCents(payment * float64(periods))
	if !isFinite(total) {
		return models.PaymentQuote{}, ErrNonFinite
	}
	interest := RoundCents(total - terms.Principal)
	if interest < 0 {
		// zero-rate loans can round a cent below the principal
		interest = 0
	}

	return models.PaymentQuote{
		MonthlyPayment:   payment,
		NumberOfPayments: periods,
		TotalPayment:     total,
		TotalInterest:    interest,
	}, nil
}

// RoundCents rounds v to two decimal places, half away from zero.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
