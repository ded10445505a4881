package domain

import "time"

// SessionIdentity é o rótulo local do usuário "logado": apenas email e horário de entrada.
// Não existe senha, token nem verificação no servidor.
type SessionIdentity struct {
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"issued_at"`
}

// SessionState é a visão pública da sessão para a API.
type SessionState struct {
	Authenticated bool             `json:"authenticated"`
	Identity      *SessionIdentity `json:"identity,omitempty"`
}
