package respond

import (
	"encoding/json"
	"fmt"
	"net/http"

	"gostore/internal/domain"
	apperror "gostore/internal/errors"
	"gostore/internal/pkg/logger"
)

// Responder padroniza as respostas JSON de todos os handlers.
type Responder struct {
	Logger logger.Logger
}

// New cria um Responder com o logger injetado.
func New(log logger.Logger) *Responder {
	return &Responder{Logger: log}
}

// Handle processa o resultado de um serviço: em caso de sucesso codifica data
// com successStatus; em caso de erro traduz para domain.ErrorResponse.
func (rs *Responder) Handle(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err != nil {
		rs.Error(w, r, err)
		return
	}
	rs.JSON(w, r, successStatus, data)
}

// JSON escreve data como JSON. data nil gera apenas o status.
func (rs *Responder) JSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	if data == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
		rs.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
	}
}

// Error traduz err para o status HTTP e o corpo padronizado.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		rs.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		// Erros de cliente (4xx) ficam em debug
		rs.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{
			"path": r.URL.Path,
		})
	}

	body := domain.ErrorResponse{
		Code:     status,
		Category: category,
		Message:  message,
		Fields:   apperror.FieldErrors(err),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// DecodeJSON lê o corpo da requisição em dst. Corpo malformado vira ValidationError.
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return apperror.NewValidationError("Payload inválido. Corpo da requisição ausente.")
	}
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}
