package service

import (
	"context"
	"fmt"

	"github.com/guttosm/homeloan/internal/calculator"
	"github.com/guttosm/homeloan/internal/domain/models"
	"github.com/guttosm/homeloan/internal/logger"
)

// PaymentService defines the business logic behind every quote surface
// (web form, JSON API and batch mode).
type PaymentService interface {
	Quote(ctx context.Context, terms models.LoanTerms) (*models.PaymentQuote, error)
}

type paymentService struct {
	quote func(models.LoanTerms) (models.PaymentQuote, error)
}

func NewPaymentService() PaymentService {
	return &paymentService{quote: calculator.Quote}
}

func (s *paymentService) Quote(ctx context.Context, terms models.LoanTerms) (*models.PaymentQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	q, err := s.quote(terms)
	if err != nil {
		logger.L().Warn().
			Float64("loan_amount", terms.Principal).
			Float64("interest_rate", terms.AnnualRatePercent).
			Int("loan_term_years", terms.TermYears).
			Err(err).
			Msg("quote rejected by calculator")
		return nil, fmt.Errorf("quote: %w", err)
	}

	logger.L().Debug().
		Float64("loan_amount", terms.Principal).
		Float64("interest_rate", terms.AnnualRatePercent).
		Int("loan_term_years", terms.TermYears).
		Float64("monthly_payment", q.MonthlyPayment).
		Msg("quote computed")
	return &q, nil
}
