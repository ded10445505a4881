package respond

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostore/internal/domain"
	apperror "gostore/internal/errors"
	"gostore/internal/pkg/logger"
)

func TestHandle_Success(t *testing.T) {
	rs := New(logger.NewNop())
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)

	rs.Handle(w, r, map[string]int{"total_count": 3}, nil, http.StatusOK)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"total_count":3}`, w.Body.String())
}

func TestHandle_NilDataWritesStatusOnly(t *testing.T) {
	rs := New(logger.NewNop())
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/v1/session", nil)

	rs.Handle(w, r, nil, nil, http.StatusNoContent)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestError_MapsAppErrorWithFields(t *testing.T) {
	rs := New(logger.NewNop())
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/v1/checkout", nil)

	err := apperror.NewFieldValidationError("formulário inválido", map[string]string{"phone": "O telefone é obrigatório"})
	rs.Error(w, r, err)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Category)
	assert.Equal(t, "O telefone é obrigatório", body.Fields["phone"])
}

func TestError_UnknownErrorIs500(t *testing.T) {
	rs := New(logger.NewNop())
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/products", nil)

	rs.Error(w, r, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "UNKNOWN_ERROR")
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Email string `json:"email"`
	}

	ok := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"ana@example.com"}`))
	require.NoError(t, DecodeJSON(ok, &dst))
	assert.Equal(t, "ana@example.com", dst.Email)

	bad := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`))
	assert.IsType(t, &apperror.ValidationError{}, DecodeJSON(bad, &dst))
}
