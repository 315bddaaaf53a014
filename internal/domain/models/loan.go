package models

// LoanTerms holds the inputs of a single payment calculation.
//
// Fields:
//   - Principal: total borrowed amount (present value of the loan).
//   - AnnualRatePercent: yearly interest rate as a percentage (5 means 5%).
//   - TermYears: loan duration in whole years.
//
// Values are transient: created per calculation and discarded afterwards.
type LoanTerms struct {
	Principal         float64 `json:"loan_amount" example:"100000"`
	AnnualRatePercent float64 `json:"interest_rate" example:"5"`
	TermYears         int     `json:"loan_term_years" example:"30"`
}

// PaymentQuote is the result of a payment calculation.
//
// All monetary values are rounded to two decimal places.
type PaymentQuote struct {
	MonthlyPayment   float64 `json:"monthly_payment" example:"536.82"`
	NumberOfPayments int     `json:"number_of_payments" example:"360"`
	TotalPayment     float64 `json:"total_payment" example:"193255.2"`
	TotalInterest    float64 `json:"total_interest" example:"93255.2"`
}
