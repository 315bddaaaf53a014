package batch

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/homeloan/internal/form"
	"github.com/guttosm/homeloan/internal/logger"
	"github.com/guttosm/homeloan/internal/metrics"
	"github.com/guttosm/homeloan/internal/service"
)

const (
	maxParallel = 8
	sourceBatch = "batch"
)

var outputHeaders = []string{
	form.FieldLoanAmount,
	form.FieldInterestRate,
	form.FieldLoanTermYears,
	"monthly_payment",
	"total_payment",
	"total_interest",
	"error",
}

// Summary reports how many rows a run read, quoted and rejected.
type Summary struct {
	Rows     int
	Quoted   int
	Rejected int
}

// ProcessFile quotes every scenario in the CSV file at path and writes the
// results to out. See Run for the processing rules.
func ProcessFile(ctx context.Context, path string, out io.Writer, svc service.PaymentService, parallel int) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Run(ctx, f, out, svc, parallel)
}

// Run reads loan scenarios from in and writes one result row per scenario to out.
//
// Behavior:
//   - Input must start with the header "loan_amount,interest_rate,loan_term_years".
//   - Each row is evaluated with the same rules as the web form.
//   - Rows are quoted concurrently; parallel <= 0 means min(NumCPU, 8), larger values are clamped to 8.
//   - Output rows keep the input order.
//   - A row that fails validation or calculation gets a message in the "error"
//     column and does not stop the run.
//
// Returns:
//   - Summary: row counts.
//   - error: header/structure problems, I/O failures or context cancellation.
func Run(ctx context.Context, in io.Reader, out io.Writer, svc service.PaymentService, parallel int) (Summary, error) {
	start := time.Now()

	rows, err := readScenarios(in)
	if err != nil {
		return Summary{}, err
	}

	limit := clampParallel(parallel)
	logger.L().Info().Int("rows", len(rows)).Int("max_parallel", limit).Msg("batch start")

	outcomes := make([]form.Outcome, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, row := range rows {
		i, row := i, row // per-iteration copies; go directive is pinned below 1.22
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outcomes[i] = form.Evaluate(gctx, row.values, svc)
			metrics.QuotesTotal.WithLabelValues(sourceBatch, form.Classify(outcomes[i].Err)).Inc()
			if outcomes[i].Kind == form.Error {
				logger.L().Debug().Int("line", row.line).Str("reason", outcomes[i].Message).Msg("row rejected")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	// a cancellation that raced the last rows would leave them half-evaluated
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	sum := Summary{Rows: len(rows)}
	w := csv.NewWriter(out)
	if err := w.Write(outputHeaders); err != nil {
		return Summary{}, fmt.Errorf("write header: %w", err)
	}
	for i, o := range outcomes {
		if o.Kind == form.Success {
			sum.Quoted++
		} else {
			sum.Rejected++
		}
		if err := w.Write(resultRecord(rows[i].values, o)); err != nil {
			return Summary{}, fmt.Errorf("write line %d: %w", rows[i].line, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return Summary{}, fmt.Errorf("flush output: %w", err)
	}

	logger.L().Info().
		Int("rows", sum.Rows).
		Int("quoted", sum.Quoted).
		Int("rejected", sum.Rejected).
		Dur("elapsed", time.Since(start)).
		Msg("batch done")
	return sum, nil
}

func resultRecord(v form.Values, o form.Outcome) []string {
	rec := []string{v.LoanAmount, v.InterestRate, v.LoanTermYears, "", "", "", ""}
	if o.Kind == form.Success {
		rec[3] = money(o.Quote.MonthlyPayment)
		rec[4] = money(o.Quote.TotalPayment)
		rec[5] = money(o.Quote.TotalInterest)
		return rec
	}
	rec[6] = o.Message
	return rec
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func clampParallel(parallel int) int {
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	if parallel > maxParallel {
		parallel = maxParallel
	}
	return parallel
}
