package dto

// PaymentRequest is the JSON body accepted by POST /api/v1/payment.
//
// Pointers distinguish a missing field from an explicit zero, so that
// "interest_rate": 0 is accepted while an absent rate is rejected.
type PaymentRequest struct {
	LoanAmount    *float64 `json:"loan_amount" binding:"required,gt=0" example:"100000"`
	InterestRate  *float64 `json:"interest_rate" binding:"required,gte=0" example:"5"`
	LoanTermYears *int     `json:"loan_term_years" binding:"required,gt=0,lte=1000" example:"30"`
}

// PaymentResponse is the JSON body returned by POST /api/v1/payment.
type PaymentResponse struct {
	MonthlyPayment   float64 `json:"monthly_payment" example:"536.82"`
	NumberOfPayments int     `json:"number_of_payments" example:"360"`
	TotalPayment     float64 `json:"total_payment" example:"193255.2"`
	TotalInterest    float64 `json:"total_interest" example:"93255.2"`
}
