package websocket

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginAllowed(t *testing.T) {
	cases := []struct {
		name    string
		host    string
		origin  string
		allowed bool
	}{
		{"no origin header", "localhost:8080", "", true},
		{"same host default port", "localhost:8080", "http://localhost:8080", true},
		{"same host custom port", "localhost:9000", "http://localhost:9000", true},
		{"port mismatch", "localhost:9000", "http://localhost:8080", false},
		{"host mismatch", "localhost:8080", "http://evil.example:8080", false},
		{"unparseable origin", "localhost:8080", "://bad", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/ws", nil)
			r.Host = tc.host
			if tc.origin != "" {
				r.Header.Set("Origin", tc.origin)
			}
			assert.Equal(t, tc.allowed, originAllowed(r))
		})
	}
}
