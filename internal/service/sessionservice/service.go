package sessionservice

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"gostore/internal/domain"
	apperror "gostore/internal/errors"
	"gostore/internal/pkg/logger"
	"gostore/internal/repository/storagerepo"
)

// StorageKey é a chave fixa da identidade no armazenamento local.
const StorageKey = "gostore:session"

// Options controla a política de restauração.
type Options struct {
	// MaxAge descarta, na restauração, identidades mais antigas que o limite.
	// Zero desativa a expiração (comportamento padrão).
	MaxAge time.Duration
	// Now permite fixar o relógio em testes.
	Now func() time.Time
}

// Service guarda no máximo uma identidade ativa e a espelha no armazenamento local.
// Não há senha, token nem verificação: a identidade é só um rótulo local.
type Service struct {
	mu       sync.RWMutex
	identity *domain.SessionIdentity
	storage  storagerepo.Storage
	maxAge   time.Duration
	now      func() time.Time
	logger   logger.Logger
}

// NewService cria o Serviço de Sessão e restaura a identidade persistida, se houver.
func NewService(ctx context.Context, storage storagerepo.Storage, opts Options, log logger.Logger) *Service {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Service{
		storage: storage,
		maxAge:  opts.MaxAge,
		now:     now,
		logger:  log,
	}
	s.Restore(ctx)
	return s
}

// SignIn cria a identidade com o email e o horário atual, substituindo a anterior,
// e a persiste no armazenamento local.
func (s *Service) SignIn(ctx context.Context, email string) (domain.SessionIdentity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.SessionIdentity{}, apperror.NewValidationError("Email é obrigatório.")
	}

	identity := domain.SessionIdentity{Email: email, IssuedAt: s.now().UTC()}

	payload, err := json.Marshal(identity)
	if err != nil {
		return domain.SessionIdentity{}, apperror.NewInternalError("Falha ao serializar a sessão.", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Set(ctx, StorageKey, string(payload)); err != nil {
		return domain.SessionIdentity{}, err
	}
	s.identity = &identity

	s.logger.Info("Sessão iniciada.", map[string]interface{}{"email": identity.Email})
	return identity, nil
}

// SignOut remove a entrada persistida e só então limpa a identidade em memória.
// Se a remoção falhar, a sessão continua ativa.
func (s *Service) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Delete(ctx, StorageKey); err != nil {
		return err
	}
	s.identity = nil

	s.logger.Info("Sessão encerrada.", nil)
	return nil
}

// IsAuthenticated é verdadeiro se houver identidade em memória.
func (s *Service) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Identity devolve a identidade ativa, se houver.
func (s *Service) Identity() (domain.SessionIdentity, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return domain.SessionIdentity{}, false
	}
	return *s.identity, true
}

// State devolve a visão pública da sessão.
func (s *Service) State() domain.SessionState {
	identity, ok := s.Identity()
	if !ok {
		return domain.SessionState{}
	}
	return domain.SessionState{Authenticated: true, Identity: &identity}
}

// Restore lê a entrada persistida e a adota como identidade ativa.
// Falhas de leitura e conteúdo malformado contam como "sem sessão anterior".
func (s *Service) Restore(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil

	raw, found, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		s.logger.Warn("Não foi possível ler a sessão persistida.", map[string]interface{}{"error": err.Error()})
		return
	}
	if !found {
		return
	}

	identity, err := decodeIdentity(raw)
	if err != nil {
		s.logger.Warn("Sessão persistida malformada ignorada.", map[string]interface{}{"error": err.Error()})
		return
	}

	if s.maxAge > 0 && s.now().Sub(identity.IssuedAt) >= s.maxAge {
		s.logger.Info("Sessão persistida expirada descartada.", map[string]interface{}{"email": identity.Email})
		if err := s.storage.Delete(ctx, StorageKey); err != nil {
			s.logger.Warn("Falha ao remover sessão expirada.", map[string]interface{}{"error": err.Error()})
		}
		return
	}

	s.identity = &identity
	s.logger.Info("Sessão restaurada.", map[string]interface{}{"email": identity.Email})
}

var errEmptyEmail = errors.New("sessão sem email")

func decodeIdentity(raw string) (domain.SessionIdentity, error) {
	var identity domain.SessionIdentity
	if err := json.Unmarshal([]byte(raw), &identity); err != nil {
		return domain.SessionIdentity{}, err
	}
	if strings.TrimSpace(identity.Email) == "" {
		return domain.SessionIdentity{}, errEmptyEmail
	}
	return identity, nil
}
