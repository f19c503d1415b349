// Package tenant holds the isolation rules shared by every data access path.
// Each application is a tenant; consumer operations are bound to one Scope.
package tenant

import (
	"regexp"
	"strings"

	"counterhub/internal/errors"
)

// DefaultAppID is the baseline application used when a client sends none.
const DefaultAppID = "ram-bank"

var appIDPattern = regexp.MustCompile(`^[a-z0-9-]{1,64}$`)

var (
	// ErrInvalidAppID is returned for identifiers outside [a-z0-9-]{1,64}.
	ErrInvalidAppID = errors.New("invalid application identifier")
	// ErrEmptyScope is returned when a scope lacks the user or the application.
	ErrEmptyScope = errors.New("tenant scope requires user and application")
)

// Scope is the authenticated (user, application) pair.
// It is only ever built from verified token claims.
type Scope struct {
	UserID string
	AppID  string
}

// NewScope builds a validated scope.
func NewScope(userID, appID string) (Scope, error) {
	s := Scope{UserID: strings.TrimSpace(userID), AppID: strings.TrimSpace(appID)}
	if err := s.Validate(); err != nil {
		return Scope{}, err
	}

	return s, nil
}

// Validate checks that both halves of the scope are present and well formed.
func (s Scope) Validate() error {
	if s.UserID == "" || s.AppID == "" {
		return ErrEmptyScope
	}
	if !appIDPattern.MatchString(s.AppID) {
		return errors.Wrapf(ErrInvalidAppID, "appId %q", s.AppID)
	}

	return nil
}

// NormalizeAppID trims raw and falls back to fallback (or DefaultAppID) when empty.
func NormalizeAppID(raw, fallback string) (string, error) {
	appID := strings.TrimSpace(raw)
	if appID == "" {
		appID = strings.TrimSpace(fallback)
	}
	if appID == "" {
		appID = DefaultAppID
	}
	if !appIDPattern.MatchString(appID) {
		return "", errors.Wrapf(ErrInvalidAppID, "appId %q", appID)
	}

	return appID, nil
}

// NormalizeFilter validates an optional admin filter. Empty means every tenant.
func NormalizeFilter(raw string) (string, error) {
	appID := strings.TrimSpace(raw)
	if appID == "" {
		return "", nil
	}
	if !appIDPattern.MatchString(appID) {
		return "", errors.Wrapf(ErrInvalidAppID, "appId %q", appID)
	}

	return appID, nil
}
