// Package auth implements the single-admin login gate: one credential
// pair from the environment, bearer session tokens kept in memory, and
// an optional static service key for non-interactive clients.
package auth

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrInvalidCredentials is returned for a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoSession is returned when a token is unknown or expired.
	ErrNoSession = errors.New("no active session")
)

// Session is one authenticated admin session.
type Session struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Manager validates the admin credential and tracks session tokens.
type Manager struct {
	adminEmail    string
	adminPassword string
	serviceKey    string

	mu       sync.Mutex
	sessions map[string]Session
}

// NewManager creates a Manager for the given admin credential. An
// optional serviceKey is accepted as a bearer token without a login.
func NewManager(adminEmail, adminPassword, serviceKey string) *Manager {
	return &Manager{
		adminEmail:    adminEmail,
		adminPassword: adminPassword,
		serviceKey:    serviceKey,
		sessions:      make(map[string]Session),
	}
}

// SignIn checks the credential pair and mints a session token.
func (m *Manager) SignIn(email, password string) (Session, error) {
	if m.adminEmail == "" || m.adminPassword == "" {
		return Session{}, ErrInvalidCredentials
	}
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(m.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.adminPassword)) == 1
	if !emailOK || !passOK {
		return Session{}, ErrInvalidCredentials
	}

	s := Session{
		Token:     uuid.NewString(),
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	m.mu.Lock()
	m.sessions[s.Token] = s
	m.mu.Unlock()
	return s, nil
}

// SignOut invalidates the token. Unknown tokens are a no-op.
func (m *Manager) SignOut(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Validate resolves a bearer token to its session. The service key
// maps to a synthetic session.
func (m *Manager) Validate(token string) (Session, error) {
	if token == "" {
		return Session{}, ErrNoSession
	}
	if m.serviceKey != "" && subtle.ConstantTimeCompare([]byte(token), []byte(m.serviceKey)) == 1 {
		return Session{Token: token, Email: "service"}, nil
	}

	m.mu.Lock()
	s, ok := m.sessions[token]
	m.mu.Unlock()
	if !ok {
		return Session{}, ErrNoSession
	}
	return s, nil
}
