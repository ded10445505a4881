package session

import (
	"context"
	"net/http"
	"regexp"
	"strings"

	"gostore/internal/api/respond"
	"gostore/internal/domain"
	apperror "gostore/internal/errors"
	"gostore/internal/pkg/logger"
)

// emailPattern aceita "algo@algo.algo" sem espaços.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SessionService define o contrato que o Handler espera da camada de Serviço.
type SessionService interface {
	SignIn(ctx context.Context, email string) (domain.SessionIdentity, error)
	SignOut(ctx context.Context) error
	State() domain.SessionState
}

// LoginRequest é o payload de POST /v1/session.
type LoginRequest struct {
	Email string `json:"email" example:"cliente@example.com"`
}

// Handler agrupa os handlers de sessão.
type Handler struct {
	Service SessionService
	Logger  logger.Logger
	resp    *respond.Responder
}

// NewHandler cria o Handler de sessão.
func NewHandler(svc SessionService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
		resp:    respond.New(log),
	}
}

// ValidEmail informa se o endereço tem o formato mínimo aceito no login.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// GetSessionHandler lida com GET /v1/session.
// @Summary Estado da sessão
// @Tags session
// @Produce json
// @Success 200 {object} domain.SessionState
// @Router /v1/session [get]
func (h *Handler) GetSessionHandler(w http.ResponseWriter, r *http.Request) {
	h.resp.JSON(w, r, http.StatusOK, h.Service.State())
}

// SignInHandler lida com POST /v1/session.
// @Summary Inicia a sessão
// @Description Login simulado: qualquer email com formato válido é aceito e substitui a sessão anterior.
// @Tags session
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Email do cliente"
// @Success 200 {object} domain.SessionState
// @Failure 400 {object} domain.ErrorResponse "Email inválido"
// @Failure 500 {object} domain.ErrorResponse "Falha ao persistir a sessão"
// @Router /v1/session [post]
func (h *Handler) SignInHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	email := strings.TrimSpace(req.Email)
	if !ValidEmail(email) {
		h.resp.Error(w, r, apperror.NewFieldValidationError("Informe um email válido.", map[string]string{
			"email": "Formato de email inválido",
		}))
		return
	}

	if _, err := h.Service.SignIn(r.Context(), email); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	h.resp.JSON(w, r, http.StatusOK, h.Service.State())
}

// SignOutHandler lida com DELETE /v1/session.
// @Summary Encerra a sessão
// @Tags session
// @Success 204 "Sessão encerrada"
// @Failure 500 {object} domain.ErrorResponse "Falha ao limpar a sessão persistida"
// @Router /v1/session [delete]
func (h *Handler) SignOutHandler(w http.ResponseWriter, r *http.Request) {
	err := h.Service.SignOut(r.Context())
	h.resp.Handle(w, r, nil, err, http.StatusNoContent)
}
