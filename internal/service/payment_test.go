package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/homeloan/internal/calculator"
	"github.com/guttosm/homeloan/internal/domain/models"
)

func TestPaymentService_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		terms   models.LoanTerms
		want    float64
		wantErr error
	}{
		{
			name:  "30y at 5%",
			terms: models.LoanTerms{Principal: 100000, AnnualRatePercent: 5, TermYears: 30},
			want:  536.82,
		},
		{
			name:  "interest free",
			terms: models.LoanTerms{Principal: 1200, AnnualRatePercent: 0, TermYears: 1},
			want:  100,
		},
		{
			name:    "invalid term",
			terms:   models.LoanTerms{Principal: 1200, AnnualRatePercent: 0, TermYears: 0},
			wantErr: calculator.ErrInvalidTerm,
		},
		{
			name:    "negative rate",
			terms:   models.LoanTerms{Principal: 1200, AnnualRatePercent: -1, TermYears: 1},
			wantErr: calculator.ErrNegativeRate,
		},
	}

	svc := NewPaymentService()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := svc.Quote(context.Background(), tc.terms)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) || out != nil {
					t.Fatalf("expected %v, got out=%+v err=%v", tc.wantErr, out, err)
				}
				return
			}
			if err != nil || out == nil {
				t.Fatalf("unexpected: out=%+v err=%v", out, err)
			}
			if out.MonthlyPayment != tc.want {
				t.Fatalf("monthly payment = %v, want %v", out.MonthlyPayment, tc.want)
			}
		})
	}
}

func TestPaymentService_CanceledContext(t *testing.T) {
	called := false
	svc := &paymentService{quote: func(models.LoanTerms) (models.PaymentQuote, error) {
		called = true
		return models.PaymentQuote{}, nil
	}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Quote(ctx, models.LoanTerms{Principal: 1, TermYears: 1}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if called {
		t.Fatalf("calculator must not run on a canceled context")
	}
}
