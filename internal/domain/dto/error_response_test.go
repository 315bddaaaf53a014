package dto

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewErrorResponse_TableDriven(t *testing.T) {
	cases := []struct {
		name        string
		message     string
		err         error
		wantDetails string
		wantError   string
	}{
		{
			name:      "range message without cause",
			message:   "All values must be positive and non-zero.",
			wantError: "All values must be positive and non-zero.",
		},
		{
			name:        "parse message with binding cause",
			message:     "Invalid input. Please enter only numeric values.",
			err:         errors.New("loan_term_years: parse error"),
			wantDetails: "loan_term_years: parse error",
			wantError:   "Invalid input. Please enter only numeric values.: loan_term_years: parse error",
		},
		{
			name:        "calculation failure",
			message:     "Unable to calculate a payment for these values.",
			err:         errors.New("quote: non-finite value in payment calculation"),
			wantDetails: "quote: non-finite value in payment calculation",
			wantError:   "Unable to calculate a payment for these values.: quote: non-finite value in payment calculation",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			before := time.Now().UTC()
			resp := NewErrorResponse(tc.message, tc.err)

			if resp.Message != tc.message || resp.ErrorDetails != tc.wantDetails {
				t.Fatalf("unexpected response: %+v", resp)
			}
			if resp.Error() != tc.wantError {
				t.Fatalf("Error() = %q, want %q", resp.Error(), tc.wantError)
			}
			if resp.Timestamp.Before(before) || resp.Timestamp.Location() != time.UTC {
				t.Fatalf("timestamp must be the UTC creation time, got %v", resp.Timestamp)
			}
		})
	}
}

func TestErrorResponse_JSONOmitsEmptyDetails(t *testing.T) {
	b, err := json.Marshal(NewErrorResponse("All values must be positive and non-zero.", nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "error_details") {
		t.Fatalf("empty details must be omitted: %s", b)
	}
	if !strings.Contains(string(b), `"message":"All values must be positive and non-zero."`) {
		t.Fatalf("message missing: %s", b)
	}
}
