package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name     string
		readyErr bool
		path     string
		want     int
	}{
		{name: "healthz ok", readyErr: false, path: "/healthz", want: 200},
		{name: "healthz ignores readiness", readyErr: true, path: "/healthz", want: 200},
		{name: "readyz ok", readyErr: false, path: "/readyz", want: 200},
		{name: "readyz degraded", readyErr: true, path: "/readyz", want: 503},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ready := func() error { return nil }
			if tc.readyErr {
				ready = func() error { return assertErr{} }
			}

			r := gin.New()
			NewHealthHandler(ready).Register(r)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			r.ServeHTTP(w, req)
			if w.Code != tc.want {
				t.Fatalf("want %d got %d", tc.want, w.Code)
			}
		})
	}
}

func TestHealthHandler_NilCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHealthHandler(nil).Register(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
