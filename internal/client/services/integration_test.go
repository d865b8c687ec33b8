package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Purvesh8762/user-management/internal/client/api"
	"github.com/Purvesh8762/user-management/internal/client/repositories/session"
	"github.com/Purvesh8762/user-management/internal/common"
	"github.com/Purvesh8762/user-management/internal/stubserver"
)

// endToEnd wires the real client stack (HTTP client, services, sqlite store)
// against the in-memory stub backend.
type endToEnd struct {
	auth  AuthService
	users UserService
	store *session.Store
	stub  *stubserver.Server
}

func setupEndToEnd(t *testing.T, stub *stubserver.Server) *endToEnd {
	t.Helper()

	srv := httptest.NewServer(stub.Handler())
	t.Cleanup(srv.Close)

	base, err := url.Parse(srv.URL + "/api/auth")
	require.NoError(t, err)

	client := api.NewHTTPClient(&http.Client{Timeout: 5 * time.Second}, *base)
	store := setupStore(t)

	return &endToEnd{
		auth:  NewAuthService(client, store),
		users: NewUserService(client, store),
		store: store,
		stub:  stub,
	}
}

func TestEndToEnd_LoginListAddDelete(t *testing.T) {
	e := setupEndToEnd(t, stubserver.New([]byte("e2e-secret")))
	ctx := context.Background()

	require.NoError(t, e.auth.Register(ctx, "Admin One", "admin@example.org", []byte("Secret1#")))

	sess, err := e.auth.Login(ctx, "admin@example.org", []byte("Secret1#"))
	require.NoError(t, err)
	require.True(t, sess.IsComplete())

	// the gate accepts the persisted session
	gated, err := e.auth.CurrentSession(ctx)
	require.NoError(t, err)
	require.Equal(t, sess, gated)

	for _, u := range []struct{ name, email string }{
		{"Jane Doe", "jane@example.org"},
		{"John Roe", "john@example.org"},
		{"Mary Major", "mary@example.org"},
	} {
		_, err := e.users.Add(ctx, u.name, u.email)
		require.NoError(t, err)
	}

	users, err := e.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)

	// delete the middle entry and re-fetch: exactly that one is gone
	target := users[1]
	require.NoError(t, e.users.Delete(ctx, target.ID))

	after, err := e.users.List(ctx)
	require.NoError(t, err)
	require.Len(t, after, 2)
	for _, u := range after {
		require.NotEqual(t, target.ID, u.ID)
	}
}

func TestEndToEnd_WrongPasswordIsRejected(t *testing.T) {
	e := setupEndToEnd(t, stubserver.New([]byte("e2e-secret")))
	ctx := context.Background()

	require.NoError(t, e.auth.Register(ctx, "Admin One", "admin@example.org", []byte("Secret1#")))

	_, err := e.auth.Login(ctx, "admin@example.org", []byte("wrong-password"))
	require.ErrorIs(t, err, common.ErrUnauthorized)

	left, err := e.store.Load(ctx)
	require.NoError(t, err)
	require.True(t, left.IsEmpty())
}

func TestEndToEnd_StaleCredentialClearsSession(t *testing.T) {
	// tokens expire immediately, so the first authenticated call is rejected
	e := setupEndToEnd(t, stubserver.New([]byte("e2e-secret")).WithTokenValidity(-time.Minute))
	ctx := context.Background()

	require.NoError(t, e.auth.Register(ctx, "Admin One", "admin@example.org", []byte("Secret1#")))
	_, err := e.auth.Login(ctx, "admin@example.org", []byte("Secret1#"))
	require.NoError(t, err)

	// the gate already notices the expired token locally
	_, err = e.auth.CurrentSession(ctx)
	require.ErrorIs(t, err, common.ErrNotLoggedIn)

	left, err := e.store.Load(ctx)
	require.NoError(t, err)
	require.True(t, left.IsEmpty())
}

func TestEndToEnd_RejectedCallWipesStore(t *testing.T) {
	e := setupEndToEnd(t, stubserver.New([]byte("e2e-secret")))
	ctx := context.Background()

	require.NoError(t, e.auth.Register(ctx, "Admin One", "admin@example.org", []byte("Secret1#")))
	_, err := e.auth.Login(ctx, "admin@example.org", []byte("Secret1#"))
	require.NoError(t, err)

	// corrupt the stored credential, reinstall it, and watch the 401 path
	forged, err := e.store.Load(ctx)
	require.NoError(t, err)
	forged.Credential = "Bearer forged-token"
	require.NoError(t, e.store.Save(ctx, forged))
	_, err = e.auth.CurrentSession(ctx)
	require.NoError(t, err)

	_, err = e.users.List(ctx)
	require.ErrorIs(t, err, common.ErrUnauthorized)

	left, err := e.store.Load(ctx)
	require.NoError(t, err)
	require.True(t, left.IsEmpty())
}

func TestEndToEnd_ForgotResetLoginFlow(t *testing.T) {
	stub := stubserver.New([]byte("e2e-secret"))
	e := setupEndToEnd(t, stub)
	ctx := context.Background()

	require.NoError(t, e.auth.Register(ctx, "Admin One", "x@y.com", []byte("OldSecret1#")))

	msg, err := e.auth.ForgotPassword(ctx, "x@y.com")
	require.NoError(t, err)
	require.Equal(t, "OTP sent successfully", msg)

	otp := stub.IssuedOTP("x@y.com")
	require.NotEmpty(t, otp)

	msg, err = e.auth.ResetPassword(ctx, "x@y.com", otp, []byte("NewSecret1#"))
	require.NoError(t, err)
	require.Equal(t, "Password reset successfully", msg)

	_, err = e.auth.Login(ctx, "x@y.com", []byte("OldSecret1#"))
	require.ErrorIs(t, err, common.ErrUnauthorized)

	sess, err := e.auth.Login(ctx, "x@y.com", []byte("NewSecret1#"))
	require.NoError(t, err)
	require.True(t, sess.IsComplete())
}

func TestEndToEnd_WrongOTPDoesNotResetPassword(t *testing.T) {
	stub := stubserver.New([]byte("e2e-secret"))
	e := setupEndToEnd(t, stub)
	ctx := context.Background()

	require.NoError(t, e.auth.Register(ctx, "Admin One", "x@y.com", []byte("OldSecret1#")))

	_, err := e.auth.ForgotPassword(ctx, "x@y.com")
	require.NoError(t, err)

	msg, err := e.auth.ResetPassword(ctx, "x@y.com", "000000", []byte("NewSecret1#"))
	require.NoError(t, err)
	require.Equal(t, "Invalid OTP", msg)

	_, err = e.auth.Login(ctx, "x@y.com", []byte("OldSecret1#"))
	require.NoError(t, err)
}
