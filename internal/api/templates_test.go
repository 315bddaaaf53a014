package api

import (
	"bytes"
	"strings"
	"testing"

	"github.com/guttosm/homeloan/internal/domain/models"
	"github.com/guttosm/homeloan/internal/form"
)

func TestLoadTemplates_RendersEveryOutcome(t *testing.T) {
	tmpl, err := LoadTemplates()
	if err != nil {
		t.Fatalf("LoadTemplates: %v", err)
	}

	cases := []struct {
		name     string
		out      form.Outcome
		contains string
	}{
		{name: "empty", out: form.Empty(), contains: "<form"},
		{name: "success", out: form.Succeeded(form.Values{}, &models.PaymentQuote{MonthlyPayment: 100}), contains: "100.00"},
		{name: "error", out: form.Failed(form.Values{}, form.ErrRange), contains: form.MsgOutOfRange},
	}
	for _, tc := range cases {
		var buf bytes.Buffer
		if err := tmpl.ExecuteTemplate(&buf, PageTemplate, tc.out); err != nil {
			t.Fatalf("%s: execute: %v", tc.name, err)
		}
		if !strings.Contains(buf.String(), tc.contains) {
			t.Fatalf("%s: output missing %q", tc.name, tc.contains)
		}
	}
}

func TestMoney(t *testing.T) {
	if got := money(536.8); got != "536.80" {
		t.Fatalf("money(536.8) = %q", got)
	}
}
