package checkoutservice

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gostore/internal/domain"
	apperror "gostore/internal/errors"
	"gostore/internal/pkg/logger"
	"gostore/internal/service/cartservice"
)

type stubSession struct {
	identity *domain.SessionIdentity
}

func (s stubSession) Identity() (domain.SessionIdentity, bool) {
	if s.identity == nil {
		return domain.SessionIdentity{}, false
	}
	return *s.identity, true
}

func validShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		FullName:   "Ana Pérez",
		Address:    "Av. Siempre Viva 742",
		City:       "Córdoba",
		PostalCode: "5000",
		Phone:      "(351) 555-1234",
	}
}

func newTestService(cart *cartservice.Store, session SessionReader) (*Service, *[]time.Duration) {
	svc := NewService(cart, session, 2*time.Second, logger.NewNop())
	var slept []time.Duration
	svc.sleep = func(d time.Duration) { slept = append(slept, d) }
	svc.now = func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }
	return svc, &slept
}

func signedIn() stubSession {
	return stubSession{identity: &domain.SessionIdentity{Email: "a@b.com", IssuedAt: time.Now()}}
}

func TestCheckout_Success(t *testing.T) {
	cart := cartservice.NewStore(logger.NewNop())
	p := domain.Product{ID: "1", Price: decimal.RequireFromString("10.00"), Stock: 3}
	cart.Add(p)
	cart.Add(p)
	cart.Add(domain.Product{ID: "2", Price: decimal.RequireFromString("4.50"), Stock: 1})

	svc, slept := newTestService(cart, signedIn())

	receipt, err := svc.Checkout(context.Background(), validShipping())

	require.NoError(t, err)
	_, parseErr := uuid.Parse(receipt.OrderID)
	assert.NoError(t, parseErr)
	assert.Equal(t, "a@b.com", receipt.Email)
	assert.Equal(t, 3, receipt.ItemCount)
	assert.True(t, receipt.Total.Equal(decimal.RequireFromString("24.50")))
	assert.Equal(t, domain.PaymentCard, receipt.PaymentMethod)
	assert.Equal(t, []time.Duration{2 * time.Second}, *slept)
	assert.True(t, cart.IsEmpty(), "carrinho deve ser esvaziado após a compra")
}

func TestCheckout_SecondCallDuringProcessingFindsEmptyCart(t *testing.T) {
	cart := cartservice.NewStore(logger.NewNop())
	cart.Add(domain.Product{ID: "1", Price: decimal.RequireFromString("10.00"), Stock: 3})

	svc := NewService(cart, signedIn(), time.Second, logger.NewNop())
	entered := make(chan struct{})
	release := make(chan struct{})
	svc.sleep = func(time.Duration) {
		close(entered)
		<-release
	}

	type result struct {
		receipt domain.Receipt
		err     error
	}
	first := make(chan result, 1)
	go func() {
		r, err := svc.Checkout(context.Background(), validShipping())
		first <- result{r, err}
	}()

	<-entered
	svc.sleep = func(time.Duration) { t.Error("segundo checkout não deveria processar") }
	_, err := svc.Checkout(context.Background(), validShipping())
	assert.IsType(t, &apperror.ValidationError{}, err)

	close(release)
	res := <-first
	require.NoError(t, res.err)
	assert.Equal(t, 1, res.receipt.ItemCount)
	assert.True(t, res.receipt.Total.Equal(decimal.RequireFromString("10.00")))
}

func TestCheckout_ConcurrentCallsBillOnce(t *testing.T) {
	cart := cartservice.NewStore(logger.NewNop())
	cart.Add(domain.Product{ID: "1", Price: decimal.RequireFromString("10.00"), Stock: 3})

	svc := NewService(cart, signedIn(), 0, logger.NewNop())
	svc.sleep = func(time.Duration) {}

	const calls = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
	)
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Checkout(context.Background(), validShipping())
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
				return
			}
			if _, ok := err.(*apperror.ValidationError); ok {
				rejected++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, calls-1, rejected)
	assert.True(t, cart.IsEmpty())
}

func TestCheckout_ItemAddedDuringProcessingStaysInCart(t *testing.T) {
	cart := cartservice.NewStore(logger.NewNop())
	cart.Add(domain.Product{ID: "1", Price: decimal.RequireFromString("10.00"), Stock: 3})

	svc, _ := newTestService(cart, signedIn())
	svc.sleep = func(time.Duration) {
		cart.Add(domain.Product{ID: "2", Price: decimal.RequireFromString("4.50"), Stock: 1})
	}

	receipt, err := svc.Checkout(context.Background(), validShipping())

	require.NoError(t, err)
	assert.Equal(t, 1, receipt.ItemCount)
	assert.True(t, receipt.Total.Equal(decimal.RequireFromString("10.00")))
	assert.False(t, cart.Contains("1"))
	assert.True(t, cart.Contains("2"))
	assert.Equal(t, 1, cart.QuantityOf("2"))
}

func TestCheckout_RequiresSession(t *testing.T) {
	cart := cartservice.NewStore(logger.NewNop())
	cart.Add(domain.Product{ID: "1", Price: decimal.NewFromInt(1)})
	svc, slept := newTestService(cart, stubSession{})

	_, err := svc.Checkout(context.Background(), validShipping())

	assert.IsType(t, &apperror.UnauthorizedError{}, err)
	assert.Empty(t, *slept)
	assert.False(t, cart.IsEmpty())
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _ := newTestService(cartservice.NewStore(logger.NewNop()), signedIn())

	_, err := svc.Checkout(context.Background(), validShipping())

	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestCheckout_InvalidFormKeepsCart(t *testing.T) {
	cart := cartservice.NewStore(logger.NewNop())
	cart.Add(domain.Product{ID: "1", Price: decimal.NewFromInt(1)})
	svc, slept := newTestService(cart, signedIn())

	info := validShipping()
	info.City = "  "
	info.Phone = "12345"

	_, err := svc.Checkout(context.Background(), info)

	require.Error(t, err)
	fields := apperror.FieldErrors(err)
	assert.Contains(t, fields, "city")
	assert.Equal(t, "O telefone deve ter 10 dígitos", fields["phone"])
	assert.Empty(t, *slept)
	assert.Equal(t, 1, cart.TotalCount())
}

func TestValidateShipping(t *testing.T) {
	assert.Empty(t, ValidateShipping(validShipping()))

	all := ValidateShipping(domain.ShippingInfo{PaymentMethod: "cripto"})
	assert.Len(t, all, 6)
	assert.Equal(t, "O telefone é obrigatório", all["phone"])

	info := validShipping()
	info.Phone = "351-555-12345"
	assert.Contains(t, ValidateShipping(info), "phone")

	info.Phone = "3515551234"
	info.PaymentMethod = domain.PaymentCash
	assert.Empty(t, ValidateShipping(info))
}
