package identity

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/keshet-app/keshet/internal/consent"
)

// Session is the resolved viewer. User is nil for an anonymous viewer.
type Session struct {
	User *User
}

// Anonymous reports whether no authenticated user is present.
func (s Session) Anonymous() bool {
	return s.User == nil
}

// loadOutcome classifies a lookup result before it collapses to
// Anonymous at the loader boundary. The distinction survives only in
// logs.
type loadOutcome int

const (
	outcomeAuthenticated loadOutcome = iota
	outcomeAnonymous
	outcomeLookupError
)

// Loader performs the session and consent-record lookups. Both soft-fail:
// no error ever crosses this boundary, so shell rendering can never be
// blocked or crashed by backend unavailability.
type Loader struct {
	client  Client
	records consent.Store
	log     *zap.Logger
}

// NewLoader wires a loader. A nil logger is replaced with a no-op one.
func NewLoader(client Client, records consent.Store, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{client: client, records: records, log: log}
}

// LoadSession resolves the current viewer. Lookup failures and
// unauthenticated outcomes both collapse to an anonymous session; the
// difference is preserved for the log only.
func (l *Loader) LoadSession(ctx context.Context) Session {
	user, err := l.client.CurrentUser(ctx)
	switch classify(err) {
	case outcomeAuthenticated:
		l.log.Debug("session resolved", zap.String("email", user.Email))
		return Session{User: &user}
	case outcomeAnonymous:
		l.log.Debug("session resolved anonymous")
		return Session{}
	default:
		l.log.Warn("identity lookup failed, degrading to anonymous", zap.Error(err))
		return Session{}
	}
}

// LoadConsentRecord fetches the consent record for user. A failed lookup
// is treated as no record found, which routes the gate to its
// must-consent state rather than an error state.
func (l *Loader) LoadConsentRecord(ctx context.Context, user User) *consent.Record {
	rec, err := l.records.Find(ctx, user.Email)
	if err != nil {
		l.log.Warn("consent lookup failed, treating as no record",
			zap.String("email", user.Email), zap.Error(err))
		return nil
	}
	return rec
}

func classify(err error) loadOutcome {
	switch {
	case err == nil:
		return outcomeAuthenticated
	case errors.Is(err, ErrUnauthenticated):
		return outcomeAnonymous
	default:
		return outcomeLookupError
	}
}
