package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/guttosm/homeloan/internal/domain/dto"
	"github.com/guttosm/homeloan/internal/domain/models"
	"github.com/guttosm/homeloan/internal/form"
	"github.com/guttosm/homeloan/internal/metrics"
	"github.com/guttosm/homeloan/internal/middleware"
	"github.com/guttosm/homeloan/internal/service"
)

// Quote sources used as metrics labels.
const (
	sourceForm = "form"
	sourceAPI  = "api"
)

// Handler provides the HTTP handlers for the loan form and the JSON API.
//
// Responsibilities:
//   - Coerce and validate submitted fields
//   - Delegate the calculation to the payment service
//   - Render the form page or a JSON body with the right status code
type Handler struct {
	svc service.PaymentService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.PaymentService): computes quotes for validated terms.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.PaymentService) *Handler {
	return &Handler{svc: svc}
}

// ShowForm handles GET / and renders the empty loan form.
func (h *Handler) ShowForm(c *gin.Context) {
	h.render(c, form.Empty())
}

// SubmitForm handles POST / with the fields loan_amount, interest_rate and
// loan_term_years.
//
// Every submission re-renders the form with 200 OK, carrying either the
// computed payment or a human-readable error message.
func (h *Handler) SubmitForm(c *gin.Context) {
	out := form.Evaluate(c.Request.Context(), form.ValuesFrom(postForm{c}), h.svc)
	metrics.QuotesTotal.WithLabelValues(sourceForm, form.Classify(out.Err)).Inc()
	h.render(c, out)
}

// postForm reads url-encoded and multipart bodies alike; an unreadable body
// yields empty fields, which fail parsing.
type postForm struct{ c *gin.Context }

func (p postForm) Get(key string) string { return p.c.PostForm(key) }

// render is the single exit point of the form page; every outcome variant
// goes through the same template.
func (h *Handler) render(c *gin.Context, out form.Outcome) {
	c.HTML(http.StatusOK, PageTemplate, out)
}

// CreatePayment handles POST /api/v1/payment requests.
//
// Responses:
//   - 200 OK: PaymentResponse with the monthly payment and totals.
//   - 400 Bad Request: malformed body, missing or non-numeric field, or a value out of range.
//   - 422 Unprocessable Entity: valid input the calculator cannot represent (e.g., overflow).
//   - 503 Service Unavailable: the request deadline expired.
//
// CreatePayment godoc
// @Summary      Calculate a monthly payment
// @Description  Returns the fixed monthly payment that repays the loan over its term, plus totals
// @Tags         payment
// @Accept       json
// @Produce      json
// @Param        request  body      dto.PaymentRequest    true  "Loan terms"
// @Success      200      {object}  dto.PaymentResponse   "Success"
// @Failure      400      {object}  dto.ErrorResponse     "Bad Request"
// @Failure      422      {object}  dto.ErrorResponse     "Unprocessable Entity"
// @Failure      503      {object}  dto.ErrorResponse     "Timeout"
// @Router       /api/v1/payment [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindErr := classifyBindError(err)
		metrics.QuotesTotal.WithLabelValues(sourceAPI, form.Classify(bindErr)).Inc()
		middleware.AbortWithError(c, http.StatusBadRequest, form.Message(bindErr), err)
		return
	}

	terms := models.LoanTerms{
		Principal:         *req.LoanAmount,
		AnnualRatePercent: *req.InterestRate,
		TermYears:         *req.LoanTermYears,
	}

	quote, err := h.svc.Quote(c.Request.Context(), terms)
	metrics.QuotesTotal.WithLabelValues(sourceAPI, form.Classify(err)).Inc()
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			middleware.AbortWithError(c, http.StatusServiceUnavailable, "request timed out", err)
			return
		}
		middleware.AbortWithError(c, http.StatusUnprocessableEntity, form.MsgCalculationNA, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentResponse{
		MonthlyPayment:   quote.MonthlyPayment,
		NumberOfPayments: quote.NumberOfPayments,
		TotalPayment:     quote.TotalPayment,
		TotalInterest:    quote.TotalInterest,
	})
}

// classifyBindError sorts a JSON binding failure into the parse or range kind.
// A missing field counts as unparseable input, like an empty form field.
func classifyBindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Join(form.ErrParse, err)
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return errors.Join(form.ErrParse, err)
		}
	}
	return errors.Join(form.ErrRange, err)
}
