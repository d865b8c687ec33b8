// Package services contains the application services of the user-management
// client. This file defines the authentication service: login, register,
// logout, the password-reset flows, and the session gate every
// authenticated screen consults before doing anything else.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Purvesh8762/user-management/internal/client/api"
	"github.com/Purvesh8762/user-management/internal/client/models"
	"github.com/Purvesh8762/user-management/internal/common"
)

// SessionStore is the credential store surface the services need.
// *session.Store satisfies it.
type SessionStore interface {
	Save(ctx context.Context, s models.Session) error
	Load(ctx context.Context) (models.Session, error)
	Clear(ctx context.Context) error
}

// AuthService defines the session-lifecycle operations for the CLI.
//
// Contract:
//   - Login: authenticate against the backend and persist the session record.
//   - Register: create a new administrator account.
//   - Logout: clear the persisted session.
//   - CurrentSession: the session gate; see its doc comment.
//   - ForgotPassword / ResetPassword: the OTP password-reset flow.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (models.Session, error)
	Register(ctx context.Context, name, email string, password []byte) error
	Logout(ctx context.Context) error
	CurrentSession(ctx context.Context) (models.Session, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, otp string, newPassword []byte) (string, error)
}

type authService struct {
	client api.Client
	store  SessionStore
}

// NewAuthService constructs an AuthService bound to the given API client
// and credential store.
func NewAuthService(client api.Client, store SessionStore) AuthService {
	return &authService{client: client, store: store}
}

// Login authenticates, persists the full session record (credential, email,
// admin id written together), and installs the credential on the API client.
func (a *authService) Login(ctx context.Context, email string, password []byte) (models.Session, error) {
	res, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return models.Session{}, err
	}

	sess := models.Session{Credential: res.Credential(), Email: res.Email, AdminID: res.ID}
	if err := a.store.Save(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("session saving error: %w", err)
	}

	a.client.SetCredential(sess.Credential)
	return sess, nil
}

// Register creates a new administrator account on the backend.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) error {
	return a.client.Register(ctx, name, email, string(password))
}

// Logout clears the persisted session and drops the in-memory credential.
// Idempotent: logging out while already logged out is not an error.
func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.client.SetCredential("")
	return nil
}

// CurrentSession is the session gate: the single decision point "is there a
// usable session right now". It returns the cached session only when both
// credential and email are present and the token, if locally inspectable,
// has not expired. A partial or expired record is cleared and reported as
// common.ErrNotLoggedIn. Storage failures surface as common.ErrStorage and
// are never conflated with "not logged in".
//
// On success the credential is installed on the API client, so the gate's
// answer is known before any authenticated round trip is attempted.
func (a *authService) CurrentSession(ctx context.Context) (models.Session, error) {
	sess, err := a.store.Load(ctx)
	if err != nil {
		return models.Session{}, err
	}

	if !sess.IsComplete() {
		// A record with exactly one half present is invalid; drop the
		// stale remainder before reporting logged-out.
		if !sess.IsEmpty() {
			if err := a.store.Clear(ctx); err != nil {
				return models.Session{}, err
			}
		}
		return models.Session{}, common.ErrNotLoggedIn
	}

	if credentialExpired(sess.Credential, time.Now()) {
		if err := a.store.Clear(ctx); err != nil {
			return models.Session{}, err
		}
		return models.Session{}, common.ErrNotLoggedIn
	}

	a.client.SetCredential(sess.Credential)
	return sess, nil
}

// ForgotPassword asks the backend to issue an OTP for the given email.
// The returned string is the backend's status text.
func (a *authService) ForgotPassword(ctx context.Context, email string) (string, error) {
	return a.client.ForgotPassword(ctx, email)
}

// ResetPassword completes the OTP flow. The email is the one the forgot
// step was issued for; password equality is the caller's concern and is
// checked before this method is reached.
func (a *authService) ResetPassword(ctx context.Context, email, otp string, newPassword []byte) (string, error) {
	return a.client.ResetPassword(ctx, email, otp, string(newPassword))
}

// credentialExpired peeks inside a "{type} {token}" credential. When the
// token part is a parseable JWT with an exp claim in the past, there is no
// point attempting a doomed round trip. Opaque or malformed credentials are
// not judged locally; the backend stays the authority for those.
func credentialExpired(credential string, now time.Time) bool {
	parts := strings.SplitN(credential, " ", 2)
	if len(parts) != 2 {
		return false
	}

	token, _, err := jwt.NewParser().ParseUnverified(parts[1], jwt.MapClaims{})
	if err != nil {
		return false
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
