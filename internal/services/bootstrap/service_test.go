package bootstrap_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"authboot/internal/authapi"
	"authboot/internal/authstub"
	"authboot/internal/domain"
	"authboot/internal/services/bootstrap"
)

// newStub starts an in-memory auth API and returns its /api/v1 base URL.
func newStub(t *testing.T) (string, *http.Client) {
	t.Helper()
	srv := httptest.NewServer(authstub.New(authstub.Config{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Minute,
		BcryptCost: bcrypt.MinCost,
	}, nil).Handler())
	t.Cleanup(srv.Close)
	return srv.URL + "/api/v1", srv.Client()
}

func newService(base string, hc *http.Client) (*bootstrap.Service, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return bootstrap.New(authapi.NewHTTP(base, hc, nil), out, nil), out
}

func lines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestRun_FreshEmail(t *testing.T) {
	base, hc := newStub(t)
	svc, out := newService(base, hc)
	creds := domain.Credentials{Email: "superuser@example.com", Password: "strong_password"}

	tok, err := svc.Run(context.Background(), creds)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)

	got := lines(out)
	require.Len(t, got, 4)
	assert.Equal(t, "Registering user: superuser@example.com", got[0])
	assert.True(t, strings.HasPrefix(got[1], "User registered successfully: {"), got[1])
	assert.Contains(t, got[1], `"email":"superuser@example.com"`)
	assert.Equal(t, "Logging in user: superuser@example.com", got[2])
	assert.Equal(t, "Login successful. Access Token: "+tok, got[3])
}

func TestRun_AlreadyRegistered(t *testing.T) {
	base, hc := newStub(t)
	creds := domain.Credentials{Email: "superuser@example.com", Password: "strong_password"}

	first, _ := newService(base, hc)
	_, err := first.Run(context.Background(), creds)
	require.NoError(t, err)

	svc, out := newService(base, hc)
	tok, err := svc.Run(context.Background(), creds)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Contains(t, out.String(), "User superuser@example.com already registered. Proceeding to login.\n")
	assert.Contains(t, out.String(), "Login successful. Access Token: "+tok)
}

func TestRun_AlreadyRegisteredWrongPassword(t *testing.T) {
	base, hc := newStub(t)
	ctx := context.Background()

	first, _ := newService(base, hc)
	_, err := first.Run(ctx, domain.Credentials{Email: "a@example.com", Password: "right"})
	require.NoError(t, err)

	svc, out := newService(base, hc)
	reg, err := svc.Register(ctx, domain.Credentials{Email: "a@example.com", Password: "wrong"})
	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationAlreadyExists, reg.Kind)
	assert.True(t, reg.Proceed())

	res, err := svc.Login(ctx, domain.Credentials{Email: "a@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, domain.LoginFailed, res.Kind)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.False(t, res.OK())
	assert.Empty(t, res.AccessToken)
	assert.Contains(t, out.String(), `Failed to login: 400 - {"detail":"Incorrect email or password"}`)

	tok, err := svc.Run(ctx, domain.Credentials{Email: "a@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Empty(t, tok)
}

func TestRun_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL + "/api/v1"
	srv.Close()

	svc, out := newService(base, &http.Client{Timeout: time.Second})
	creds := domain.Credentials{Email: "a@example.com", Password: "pw"}
	ctx := context.Background()

	reg, err := svc.Register(ctx, creds)
	require.Error(t, err)
	assert.Equal(t, domain.RegistrationNetworkError, reg.Kind)
	assert.False(t, reg.Proceed())
	assert.NotEmpty(t, reg.Message)

	res, err := svc.Login(ctx, creds)
	require.Error(t, err)
	assert.Equal(t, domain.LoginNetworkError, res.Kind)

	out.Reset()
	tok, err := svc.Run(ctx, creds)
	require.ErrorIs(t, err, bootstrap.ErrRegistrationAborted)
	assert.Empty(t, tok)

	got := lines(out)
	require.Len(t, got, 2, "login must not be attempted")
	assert.Equal(t, "Registering user: a@example.com", got[0])
	assert.True(t, strings.HasPrefix(got[1], "An error occurred while registering user: "), got[1])
}

func TestRun_RegistrationFailureAborts(t *testing.T) {
	var loginCalled atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/login") {
			loginCalled.Store(true)
		}
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc, out := newService(srv.URL, srv.Client())
	tok, err := svc.Run(context.Background(), domain.Credentials{Email: "a@example.com", Password: "pw"})
	require.ErrorIs(t, err, bootstrap.ErrRegistrationAborted)
	assert.Empty(t, tok)
	assert.False(t, loginCalled.Load())
	assert.Contains(t, out.String(), "Failed to register user: 500 - boom\n")
}

func TestLogin_MissingTokenIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token_type":"bearer"}`))
	}))
	defer srv.Close()

	svc, _ := newService(srv.URL, srv.Client())
	res, err := svc.Login(context.Background(), domain.Credentials{Email: "a@example.com", Password: "pw"})
	require.ErrorIs(t, err, authapi.ErrMissingToken)
	assert.Equal(t, domain.LoginFailed, res.Kind)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
