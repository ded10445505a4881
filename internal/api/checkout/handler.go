package checkout

import (
	"context"
	"net/http"

	"gostore/internal/api/respond"
	"gostore/internal/domain"
	"gostore/internal/pkg/logger"
	"gostore/internal/pkg/middleware"
)

// CheckoutService define o contrato que o Handler espera da camada de Serviço.
type CheckoutService interface {
	Checkout(ctx context.Context, info domain.ShippingInfo) (domain.Receipt, error)
}

// Handler agrupa o handler de checkout.
type Handler struct {
	Service CheckoutService
	Logger  logger.Logger
	resp    *respond.Responder
}

// NewHandler cria o Handler de checkout.
func NewHandler(svc CheckoutService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
		resp:    respond.New(log),
	}
}

// CheckoutHandler lida com POST /v1/checkout.
// @Summary Finaliza a compra (pagamento simulado)
// @Description Exige sessão ativa e carrinho não vazio. Valida o formulário de envio, simula o processamento e esvazia o carrinho.
// @Tags checkout
// @Accept json
// @Produce json
// @Param shipping body domain.ShippingInfo true "Dados de envio e forma de pagamento"
// @Success 201 {object} domain.Receipt
// @Failure 400 {object} domain.ErrorResponse "Formulário inválido ou carrinho vazio"
// @Failure 401 {object} domain.ErrorResponse "Sessão ausente"
// @Router /v1/checkout [post]
func (h *Handler) CheckoutHandler(w http.ResponseWriter, r *http.Request) {
	if identity, ok := middleware.GetSessionIdentityFromContext(r.Context()); ok {
		h.Logger.Debug("Checkout iniciado.", map[string]interface{}{"email": identity.Email})
	}

	var info domain.ShippingInfo
	if err := respond.DecodeJSON(r, &info); err != nil {
		h.resp.Error(w, r, err)
		return
	}

	receipt, err := h.Service.Checkout(r.Context(), info)
	h.resp.Handle(w, r, receipt, err, http.StatusCreated)
}
