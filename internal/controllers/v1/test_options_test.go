package v1_test

import (
	"net/http"
	"testing"

	"github.com/daily-envelope/backend/internal/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/day", "OPTIONS, GET, POST"},
		{"http://example.com/v1/expenses", "OPTIONS, GET, POST"},
		{"http://example.com/v1/expenses/0", "OPTIONS, GET, PATCH, DELETE"},
		{"http://example.com/v1/settings", "OPTIONS, GET, PATCH"},
		{"http://example.com/v1/vault", "OPTIONS, GET"},
		{"http://example.com/v1/vault/withdrawal", "OPTIONS, POST"},
		{"http://example.com/v1/ledger", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), suite.router, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}
