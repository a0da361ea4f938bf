package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"authboot/internal/domain"
)

const (
	opSignup = "signup"
	opLogin  = "login"

	// maxBodyBytes caps how much of a response body is read into memory.
	maxBodyBytes = 1 << 20
)

type HTTP struct {
	Base string
	HTTP *http.Client
	Log  *slog.Logger
}

// NewHTTP returns a client rooted at base, e.g. http://localhost:8000/api/v1.
// A nil hc falls back to http.DefaultClient and a nil logger discards output.
func NewHTTP(base string, hc *http.Client, logger *slog.Logger) *HTTP {
	if hc == nil {
		hc = http.DefaultClient
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: hc, Log: logger}
}

// Signup creates an account for creds and returns the user object body.
func (c *HTTP) Signup(ctx context.Context, creds domain.Credentials) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(creds); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/auth/signup", buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	_, body, err := c.do(req, opSignup)
	if err != nil {
		return nil, err
	}
	return compactJSON(body), nil
}

// Login posts form-encoded credentials and returns the issued access token.
func (c *HTTP) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	status, body, err := c.do(req, opLogin)
	if err != nil {
		return "", err
	}

	var out struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", &StatusError{Op: opLogin, StatusCode: status, Body: string(body), Err: fmt.Errorf("%w: %v", ErrMissingToken, err)}
	}
	if out.AccessToken == "" {
		return "", &StatusError{Op: opLogin, StatusCode: status, Body: string(body), Err: ErrMissingToken}
	}
	return out.AccessToken, nil
}

// do sends req and returns the status and body of a 2xx response. Any other
// status becomes a *StatusError; transport failures become a *NetworkError.
func (c *HTTP) do(req *http.Request, op string) (int, []byte, error) {
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)

	log := c.Log.With("op", op, "method", req.Method, "url", req.URL.String(), "request_id", reqID)
	start := time.Now()

	resp, err := c.HTTP.Do(req)
	if err != nil {
		log.Debug("request failed", "error", err, "duration", time.Since(start))
		return 0, nil, &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		log.Debug("reading response failed", "status", resp.StatusCode, "error", err)
		return resp.StatusCode, nil, &NetworkError{Op: op, Err: err}
	}
	log.Debug("request done", "status", resp.StatusCode, "bytes", len(body), "duration", time.Since(start))

	if resp.StatusCode/100 != 2 {
		return resp.StatusCode, body, &StatusError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}
	return resp.StatusCode, body, nil
}

// compactJSON strips insignificant whitespace from b when it is valid JSON
// and otherwise returns it trimmed.
func compactJSON(b []byte) []byte {
	var out bytes.Buffer
	if err := json.Compact(&out, b); err != nil {
		return bytes.TrimSpace(b)
	}
	return out.Bytes()
}

var _ domain.AuthClient = (*HTTP)(nil)
