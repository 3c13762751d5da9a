package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	portssvc "github.com/SscSPs/wallet_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators_RepeatedCallsReportSameOutcome(t *testing.T) {
	first := RegisterValidators()
	second := RegisterValidators()

	require.NoError(t, first)
	assert.Equal(t, first, second)
}

func TestRegisterValidators_UnknownEngine(t *testing.T) {
	err := registerValidators(struct{}{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected validator engine")
}

func TestRegisterValidators_Tags(t *testing.T) {
	v := validator.New()
	require.NoError(t, registerValidators(v))

	tests := []struct {
		value string
		tag   string
		valid bool
	}{
		{"credit", "txnkind", true},
		{"REFUND", "txnkind", true},
		{"chargeback", "txnkind", false},
		{"pending", "txnstatus", true},
		{"settled", "txnstatus", false},
		{"amount-desc", "sortkey", true},
		{"newest", "sortkey", false},
	}
	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.value, func(t *testing.T) {
			err := v.Var(tt.value, tt.tag)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestRegisterRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{IsProduction: true, JWTSecret: "test-secret"}

	err := RegisterRoutes(r, cfg, &portssvc.ServiceContainer{}, nil)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/wallet", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
