package checkoutservice

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"gostore/internal/domain"
	apperror "gostore/internal/errors"
	"gostore/internal/pkg/logger"
)

// CartStore é o que o checkout precisa do carrinho.
type CartStore interface {
	Snapshot() domain.Cart
	Take() domain.Cart
}

// SessionReader é o que o checkout precisa da sessão.
type SessionReader interface {
	Identity() (domain.SessionIdentity, bool)
}

// Service processa o pagamento simulado.
type Service struct {
	cart    CartStore
	session SessionReader
	delay   time.Duration
	sleep   func(time.Duration)
	now     func() time.Time
	logger  logger.Logger
}

// NewService cria o Serviço de Checkout com o atraso fixo de processamento.
func NewService(cart CartStore, session SessionReader, delay time.Duration, log logger.Logger) *Service {
	return &Service{
		cart:    cart,
		session: session,
		delay:   delay,
		sleep:   time.Sleep,
		now:     time.Now,
		logger:  log,
	}
}

// Checkout valida o formulário, retira o carrinho e simula o processamento.
// Uma vez iniciado, o processamento não pode ser cancelado: ctx não é consultado
// durante a espera.
func (s *Service) Checkout(ctx context.Context, info domain.ShippingInfo) (domain.Receipt, error) {
	// 1. Sessão obrigatória
	identity, ok := s.session.Identity()
	if !ok {
		return domain.Receipt{}, apperror.NewUnauthorizedError("Faça login para continuar com o pagamento.")
	}

	// 2. Carrinho não pode estar vazio
	if s.cart.Snapshot().IsEmpty() {
		return domain.Receipt{}, apperror.NewValidationError("O carrinho está vazio.")
	}

	// 3. Validação do formulário
	info = normalizeShipping(info)
	if fields := ValidateShipping(info); len(fields) > 0 {
		return domain.Receipt{}, apperror.NewFieldValidationError("Formulário de envio inválido.", fields)
	}

	// 4. Retira o carrinho antes da espera. Dois checkouts simultâneos não
	// cobram as mesmas linhas, e o que for adicionado durante o processamento
	// fica para a próxima compra.
	cart := s.cart.Take()
	if cart.IsEmpty() {
		return domain.Receipt{}, apperror.NewValidationError("O carrinho está vazio.")
	}

	s.logger.Info("Processando pagamento simulado.", map[string]interface{}{
		"email":      identity.Email,
		"item_count": cart.TotalCount(),
		"total":      cart.TotalPrice().StringFixed(2),
	})

	// 5. Processamento simulado
	s.sleep(s.delay)

	receipt := domain.Receipt{
		OrderID:       uuid.NewString(),
		Email:         identity.Email,
		ItemCount:     cart.TotalCount(),
		Total:         cart.TotalPrice(),
		PaymentMethod: info.PaymentMethod,
		PaidAt:        s.now().UTC(),
	}

	s.logger.Info("Compra realizada com sucesso.", map[string]interface{}{
		"order_id": receipt.OrderID,
		"email":    receipt.Email,
	})
	return receipt, nil
}

func normalizeShipping(info domain.ShippingInfo) domain.ShippingInfo {
	info.FullName = strings.TrimSpace(info.FullName)
	info.Address = strings.TrimSpace(info.Address)
	info.City = strings.TrimSpace(info.City)
	info.PostalCode = strings.TrimSpace(info.PostalCode)
	info.Phone = strings.TrimSpace(info.Phone)
	if strings.TrimSpace(string(info.PaymentMethod)) == "" {
		info.PaymentMethod = domain.PaymentCard
	}
	return info
}

// ValidateShipping devolve as mensagens de erro por campo; vazio significa válido.
func ValidateShipping(info domain.ShippingInfo) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(info.FullName) == "" {
		errs["full_name"] = "O nome completo é obrigatório"
	}
	if strings.TrimSpace(info.Address) == "" {
		errs["address"] = "O endereço é obrigatório"
	}
	if strings.TrimSpace(info.City) == "" {
		errs["city"] = "A cidade é obrigatória"
	}
	if strings.TrimSpace(info.PostalCode) == "" {
		errs["postal_code"] = "O código postal é obrigatório"
	}

	if strings.TrimSpace(info.Phone) == "" {
		errs["phone"] = "O telefone é obrigatório"
	} else if len(digitsOnly(info.Phone)) != 10 {
		errs["phone"] = "O telefone deve ter 10 dígitos"
	}

	if info.PaymentMethod != "" && !info.PaymentMethod.Valid() {
		errs["payment_method"] = "Forma de pagamento inválida"
	}

	return errs
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
