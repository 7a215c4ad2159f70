package gateway

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginMiddleware(t *testing.T) {
	var testCases = []struct {
		description string
		allowed     []string
		origin      string
		expect      int
	}{
		{description: "no origin header", origin: "", expect: http.StatusOK},
		{description: "localhost origin", origin: "http://localhost:3000", expect: http.StatusOK},
		{description: "loopback ip origin", origin: "http://127.0.0.1:8080", expect: http.StatusOK},
		{description: "foreign origin", origin: "https://example.com", expect: http.StatusForbidden},
		{description: "allowed origin", allowed: []string{"https://example.com"}, origin: "https://example.com", expect: http.StatusOK},
		{description: "explicit list excludes loopback", allowed: []string{"https://example.com"}, origin: "http://localhost", expect: http.StatusForbidden},
		{description: "wildcard", allowed: []string{"*"}, origin: "https://other.org", expect: http.StatusOK},
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	for _, testCase := range testCases {
		handler := ChainMiddlewareHandlers(next, originMiddleware(testCase.allowed))
		request := httptest.NewRequest(http.MethodPost, "/rpc", nil)
		if testCase.origin != "" {
			request.Header.Set("Origin", testCase.origin)
		}
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		assert.Equal(t, testCase.expect, recorder.Code, testCase.description)
	}
}
