package form

import (
	"context"
	"errors"

	"github.com/guttosm/homeloan/internal/domain/models"
	"github.com/guttosm/homeloan/internal/metrics"
)

// Kind identifies which variant an Outcome holds.
type Kind int

const (
	// EmptyForm is a form shown before any submission.
	EmptyForm Kind = iota
	// Success carries a computed payment quote.
	Success
	// Error carries a user-facing message.
	Error
)

func (k Kind) String() string {
	switch k {
	case EmptyForm:
		return "empty"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Outcome is the single value the page renderer consumes. Exactly one of
// Quote (Success) or Message (Error) is meaningful, depending on Kind.
// Values echoes the submitted fields back into the form.
type Outcome struct {
	Kind    Kind
	Values  Values
	Quote   *models.PaymentQuote
	Message string
	Err     error
}

// Quoter computes a payment quote for already validated terms.
type Quoter interface {
	Quote(ctx context.Context, terms models.LoanTerms) (*models.PaymentQuote, error)
}

// Empty returns the outcome for a form that has not been submitted.
func Empty() Outcome {
	return Outcome{Kind: EmptyForm}
}

// Failed returns an error outcome for err, keeping the submitted values.
func Failed(v Values, err error) Outcome {
	return Outcome{Kind: Error, Values: v, Message: Message(err), Err: err}
}

// Succeeded returns a success outcome carrying q.
func Succeeded(v Values, q *models.PaymentQuote) Outcome {
	return Outcome{Kind: Success, Values: v, Quote: q}
}

// Evaluate runs a submission through parsing, range validation and the quoter,
// in that order. The quoter is never called for input that fails validation.
func Evaluate(ctx context.Context, v Values, q Quoter) Outcome {
	terms, err := Parse(v)
	if err != nil {
		return Failed(v, err)
	}
	quote, err := q.Quote(ctx, terms)
	if err != nil {
		return Failed(v, err)
	}
	return Succeeded(v, quote)
}

// Classify maps the error of a quote attempt to a metrics outcome label.
func Classify(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeSuccess
	case errors.Is(err, ErrParse), errors.Is(err, ErrRange):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeFailed
	}
}
