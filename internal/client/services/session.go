// Package services contains application services for the CraftConnect client.
// This file defines the session manager: the single owner of the in-memory
// session and the only writer of the persisted session store.
package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/dmitrijs2005/craftconnect/internal/client/client"
	"github.com/dmitrijs2005/craftconnect/internal/client/models"
	"github.com/dmitrijs2005/craftconnect/internal/client/sessionstore"
	"github.com/dmitrijs2005/craftconnect/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNotAuthenticated is returned by operations that need a live session.
var ErrNotAuthenticated = errors.New("not authenticated")

const (
	loginFailedMessage    = "Login failed. Please check your credentials."
	registerFailedMessage = "Registration failed. Please try again."
)

// State is the lifecycle position of the session.
type State int

const (
	StateRestoring State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Session is a read-only snapshot of the current identity.
//
// IsAuthenticated holds exactly when both User and Token are present.
// ExpiresAt is decoded from the token's "exp" claim when the token is a JWT;
// it is informational and never checked.
type Session struct {
	User            models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	ExpiresAt       *time.Time
}

// State derives the lifecycle state from the snapshot.
func (s Session) State() State {
	switch {
	case s.IsLoading:
		return StateRestoring
	case s.IsAuthenticated:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

// LoginResult is what Login and Register report to a view. Error is a
// message fit for display.
type LoginResult struct {
	Success bool
	User    models.User
	Error   string
}

// Authenticator is the part of the backend API the manager calls.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
}

type subscriber struct {
	id int
	fn func(Session)
}

// SessionManager owns the session.
//
// Within one operation the order is: backend call, store write, memory write,
// subscriber notification. Independent operations are not ordered against
// each other; the last write wins.
type SessionManager struct {
	auth  Authenticator
	store sessionstore.Store
	log   logging.Logger

	mu      sync.Mutex
	session Session
	subs    []subscriber
	nextID  int
}

// NewSessionManager returns a manager in the Restoring state. Call Restore
// once before use.
func NewSessionManager(auth Authenticator, store sessionstore.Store, log logging.Logger) *SessionManager {
	if log == nil {
		log = logging.Nop()
	}
	return &SessionManager{
		auth:    auth,
		store:   store,
		log:     log,
		session: Session{IsLoading: true},
	}
}

// Restore loads the persisted pair. A complete pair yields Authenticated,
// anything else Anonymous. Store failures are logged and treated as absent.
func (m *SessionManager) Restore(ctx context.Context) {
	entry, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to load persisted session", "error", err)
		entry = nil
	}

	next := Session{}
	if entry != nil {
		next = authenticated(entry.Token, entry.User)
		m.log.Info(ctx, "session restored", "user_id", entry.User.ID())
	} else {
		m.log.Debug(ctx, "no persisted session")
	}

	m.set(next)
}

// Login authenticates against the backend. It never returns an error: any
// failure is reported in the result and leaves the session untouched.
func (m *SessionManager) Login(ctx context.Context, email, password string) LoginResult {
	resp, err := m.auth.Login(ctx, email, password)
	return m.establish(ctx, "login", resp, err, loginFailedMessage)
}

// Register creates an account and signs it in.
func (m *SessionManager) Register(ctx context.Context, req models.RegisterRequest) LoginResult {
	resp, err := m.auth.Register(ctx, req)
	return m.establish(ctx, "register", resp, err, registerFailedMessage)
}

func (m *SessionManager) establish(ctx context.Context, op string, resp *models.AuthResponse, err error, fallback string) LoginResult {
	if err != nil {
		m.log.Warn(ctx, op+" failed", "error", err)
		msg := client.ErrorDetail(err)
		if msg == "" {
			msg = fallback
		}
		return LoginResult{Error: msg}
	}
	if !resp.Complete() {
		m.log.Warn(ctx, op+" response lacks token or user")
		return LoginResult{Error: fallback}
	}

	if err := m.store.Save(ctx, resp.AccessToken, resp.User); err != nil {
		m.log.Warn(ctx, "session not persisted", "op", op, "error", err)
	}

	m.set(authenticated(resp.AccessToken, resp.User))
	m.log.Info(ctx, op+" succeeded", "user_id", resp.User.ID())

	return LoginResult{Success: true, User: resp.User}
}

// Logout clears the store and the in-memory session. It cannot fail.
func (m *SessionManager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear persisted session", "error", err)
	}
	m.set(Session{})
	m.log.Info(ctx, "logged out")
}

// Invalidate tears the session down after the backend rejected its token.
// It does nothing when no session is held.
func (m *SessionManager) Invalidate(ctx context.Context) {
	if !m.Session().IsAuthenticated {
		return
	}
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear persisted session", "error", err)
	}
	m.set(Session{})
	m.log.Warn(ctx, "session invalidated by backend")
}

// UpdateUser replaces the user record in memory and in the store. The token
// is kept. It returns ErrNotAuthenticated when no session is held.
func (m *SessionManager) UpdateUser(ctx context.Context, user models.User) error {
	if user.IsZero() {
		return models.ErrInvalidUser
	}

	cur := m.Session()
	if !cur.IsAuthenticated {
		return ErrNotAuthenticated
	}

	if err := m.store.Save(ctx, cur.Token, user); err != nil {
		m.log.Warn(ctx, "updated user not persisted", "error", err)
	}

	next := cur
	next.User = user
	m.set(next)
	return nil
}

// Session returns a snapshot of the current session.
func (m *SessionManager) Session() Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.session
}

// Token returns the bearer token, or "" when none is held. It makes the
// manager a client.TokenSource.
func (m *SessionManager) Token() string {
	return m.Session().Token
}

func (m *SessionManager) State() State {
	return m.Session().State()
}

// Subscribe registers fn to receive the session after every transition.
// Calls are synchronous, in subscription order. The returned function
// unsubscribes and may be called more than once.
func (m *SessionManager) Subscribe(fn func(Session)) (unsubscribe func()) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs = append(m.subs, subscriber{id: id, fn: fn})
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, s := range m.subs {
				if s.id == id {
					m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// set installs next and notifies subscribers outside the lock.
func (m *SessionManager) set(next Session) {
	m.mu.Lock()
	m.session = next
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	for _, s := range subs {
		s.fn(next)
	}
}

func authenticated(token string, user models.User) Session {
	return Session{
		User:            user,
		Token:           token,
		IsAuthenticated: token != "" && !user.IsZero(),
		ExpiresAt:       tokenExpiry(token),
	}
}

// tokenExpiry reads "exp" without verifying the signature; the client has no
// key and only displays the value.
func tokenExpiry(token string) *time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return nil
	}
	t := exp.Time
	return &t
}
