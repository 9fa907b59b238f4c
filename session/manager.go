// Package session owns the single client Session value and drives the
// Sign in with Apple sequence.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"clementus360/glowup/config"
	"clementus360/glowup/identity"
	"clementus360/glowup/notify"
	"clementus360/glowup/types"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// Exchanger converts an identity token into a backend session and writes
// the user's profile.
type Exchanger interface {
	Exchange(ctx context.Context, identityToken string) (types.Session, error)
	UpsertProfile(ctx context.Context, profile types.Profile) error
	SignOut(ctx context.Context) error
}

// Restorer is implemented by exchangers that can resume an earlier session.
type Restorer interface {
	Restore(ctx context.Context, accessToken string) (types.Session, error)
}

type Outcome int

const (
	OutcomeSignedIn Outcome = iota + 1
	OutcomeAlreadySignedIn
	OutcomeCanceled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSignedIn:
		return "signed in"
	case OutcomeAlreadySignedIn:
		return "already signed in"
	case OutcomeCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

type SignInResult struct {
	Outcome Outcome
	Session types.Session
}

const signInKey = "sign-in"

// Manager is the only writer of the Session. Status starts as Loading and
// leaves it exactly once, in Bootstrap or SignOut.
type Manager struct {
	bridge         identity.Bridge
	exchanger      Exchanger
	logger         logrus.FieldLogger
	notifier       notify.Notifier
	notifyDuration time.Duration
	restoreToken   string

	group         singleflight.Group
	bootstrapOnce sync.Once

	// emitMu keeps subscriber callbacks in commit order.
	emitMu sync.Mutex

	mu      sync.RWMutex
	session types.Session
	subs    []subscriber
	nextSub int
}

type Option func(*Manager)

func WithLogger(logger logrus.FieldLogger) Option {
	return func(m *Manager) { m.logger = logger }
}

func WithNotifier(n notify.Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

func WithNotifyDuration(d time.Duration) Option {
	return func(m *Manager) { m.notifyDuration = d }
}

// WithRestoreToken makes Bootstrap try to resume the session behind accessToken.
func WithRestoreToken(accessToken string) Option {
	return func(m *Manager) { m.restoreToken = accessToken }
}

func NewManager(bridge identity.Bridge, exchanger Exchanger, opts ...Option) *Manager {
	m := &Manager{
		bridge:         bridge,
		exchanger:      exchanger,
		logger:         config.Logger,
		notifier:       notify.Discard,
		notifyDuration: config.DefaultNotifyDuration,
		session:        types.Session{Status: types.StatusLoading},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// CurrentSession returns a snapshot of the session.
func (m *Manager) CurrentSession() types.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// Bootstrap resolves the initial Loading state. Only the first call does any work.
func (m *Manager) Bootstrap(ctx context.Context) types.Session {
	m.bootstrapOnce.Do(func() {
		next := types.Session{Status: types.StatusUnauthenticated}

		if restorer, ok := m.exchanger.(Restorer); ok && m.restoreToken != "" {
			restored, err := restorer.Restore(ctx, m.restoreToken)
			if err != nil {
				m.logger.WithError(err).Warn("Could not restore previous session")
			} else {
				restored.Status = types.StatusAuthenticated
				next = restored
			}
		}

		m.commit(func(cur types.Session) (types.Session, bool) {
			if cur.Status != types.StatusLoading {
				return cur, false
			}
			return next, true
		})
	})
	return m.CurrentSession()
}

// SignIn runs the credential prompt, the token exchange and the profile
// write. Concurrent calls share one run. Cancellation is reported as
// OutcomeCanceled with a nil error.
func (m *Manager) SignIn(ctx context.Context) (SignInResult, error) {
	if res, done, err := m.resolvedSignIn(); done {
		return res, err
	}

	v, err, _ := m.group.Do(signInKey, func() (interface{}, error) {
		return m.joinSignIn(ctx)
	})
	res, _ := v.(SignInResult)
	return res, err
}

// joinSignIn runs inside the flight group. A caller can pass the first status
// check and reach the group only after the flight it raced has committed, so
// the status is checked again before prompting.
func (m *Manager) joinSignIn(ctx context.Context) (SignInResult, error) {
	if res, done, err := m.resolvedSignIn(); done {
		return res, err
	}
	return m.signIn(ctx)
}

// resolvedSignIn answers SignIn without a prompt when the status allows no
// transition.
func (m *Manager) resolvedSignIn() (SignInResult, bool, error) {
	cur := m.CurrentSession()
	switch cur.Status {
	case types.StatusLoading:
		return SignInResult{Session: cur}, true, types.ErrSessionLoading
	case types.StatusAuthenticated:
		return SignInResult{Outcome: OutcomeAlreadySignedIn, Session: cur}, true, nil
	}
	return SignInResult{}, false, nil
}

func (m *Manager) signIn(ctx context.Context) (SignInResult, error) {
	cred, err := m.bridge.RequestCredential(ctx)
	if errors.Is(err, types.ErrCanceled) {
		m.logger.Info("User canceled the sign-in flow")
		return SignInResult{Outcome: OutcomeCanceled, Session: m.CurrentSession()}, nil
	}
	if err != nil {
		var perr *types.ProviderError
		if !errors.As(err, &perr) {
			err = &types.ProviderError{Err: err}
		}
		return m.fail(err, "Apple Sign-In error")
	}

	session, err := m.exchanger.Exchange(ctx, cred.IdentityToken)
	cred.IdentityToken = ""
	if err != nil {
		var xerr *types.ExchangeError
		if !errors.As(err, &xerr) {
			err = &types.ExchangeError{Err: err}
		}
		return m.fail(err, "Supabase sign-in error")
	}

	session.Status = types.StatusAuthenticated
	if session.Email == "" {
		session.Email = cred.Email
	}

	if cred.HasFullName() {
		fullName := cred.FullName.String()
		if session.FullName == "" {
			session.FullName = fullName
		}

		profile := types.Profile{ID: session.UserID, FullName: fullName, Email: cred.Email}
		if err := m.exchanger.UpsertProfile(ctx, profile); err != nil {
			m.logger.WithError(err).WithField("user_id", session.UserID).Error("Profile update error")
		} else {
			m.logger.WithField("user_id", session.UserID).Info("Profile updated successfully")
		}
	}

	m.commit(func(types.Session) (types.Session, bool) {
		return session, true
	})
	m.logger.WithField("user_id", session.UserID).Info("Supabase sign-in successful")

	return SignInResult{Outcome: OutcomeSignedIn, Session: session}, nil
}

func (m *Manager) fail(err error, msg string) (SignInResult, error) {
	m.logger.WithError(err).Error(msg)
	m.notifier.Notify(notify.ErrorNotification(err.Error(), m.notifyDuration))
	return SignInResult{Session: m.CurrentSession()}, err
}

// SignOut clears the local session immediately, then asks the backend to
// revoke it. A failed revoke is only logged.
func (m *Manager) SignOut(ctx context.Context) {
	var wasAuthenticated bool
	m.commit(func(cur types.Session) (types.Session, bool) {
		wasAuthenticated = cur.Status == types.StatusAuthenticated
		if cur.Status == types.StatusUnauthenticated {
			return cur, false
		}
		return types.Session{Status: types.StatusUnauthenticated}, true
	})

	if !wasAuthenticated {
		return
	}
	if err := m.exchanger.SignOut(ctx); err != nil {
		m.logger.WithError(err).Warn("Remote sign-out failed")
	}
}

// commit applies next under the lock and, when it reports a change, tells
// subscribers about the new session.
func (m *Manager) commit(next func(cur types.Session) (types.Session, bool)) {
	m.emitMu.Lock()
	defer m.emitMu.Unlock()

	m.mu.Lock()
	updated, changed := next(m.session)
	if changed {
		m.session = updated
	}
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	m.mu.Unlock()

	if !changed {
		return
	}
	for _, s := range subs {
		s.fn(updated)
	}
}
