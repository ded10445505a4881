package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod é a forma de pagamento escolhida no checkout simulado.
type PaymentMethod string

const (
	PaymentCard     PaymentMethod = "tarjeta"
	PaymentTransfer PaymentMethod = "transferencia"
	PaymentCash     PaymentMethod = "efectivo"
)

// Valid informa se o método é um dos aceitos.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentTransfer, PaymentCash:
		return true
	}
	return false
}

// ShippingInfo é o formulário de envio do checkout.
type ShippingInfo struct {
	FullName      string        `json:"full_name"`
	Address       string        `json:"address"`
	City          string        `json:"city"`
	PostalCode    string        `json:"postal_code"`
	Phone         string        `json:"phone"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// Receipt é o resumo devolvido após o pagamento simulado. Não é persistido.
type Receipt struct {
	OrderID       string          `json:"order_id"`
	Email         string          `json:"email"`
	ItemCount     int             `json:"item_count"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	PaidAt        time.Time       `json:"paid_at"`
}
