package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRequestID_Propagation(t *testing.T) {
	cases := []struct {
		name     string
		incoming string
		reuse    bool
	}{
		{name: "generated when absent", incoming: "", reuse: false},
		{name: "reused when present", incoming: "abc-123", reuse: true},
		{name: "regenerated when too long", incoming: strings.Repeat("x", 65), reuse: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			r := gin.New()
			r.Use(RequestID())
			var seen string
			r.GET("/", func(c *gin.Context) {
				seen = c.GetString(RequestIDKey)
				c.String(200, "ok")
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set(RequestIDHeader, tc.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			got := w.Header().Get(RequestIDHeader)
			if got == "" || got != seen {
				t.Fatalf("header %q context %q", got, seen)
			}
			if tc.reuse != (got == tc.incoming) {
				t.Fatalf("reuse=%v but got %q for incoming %q", tc.reuse, got, tc.incoming)
			}
		})
	}
}
