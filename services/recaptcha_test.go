package services

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func verifyServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "verify-secret", r.Form.Get("secret"))
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRecaptchaService_Valid(t *testing.T) {
	srv := verifyServer(t, http.StatusOK, `{"success":true,"score":0.9}`)
	recaptcha := NewRecaptchaService(srv.URL, "verify-secret", 0.5, 5*time.Second)

	valid, err := recaptcha.Verify("", "proof-token")
	assert.NoError(t, err)
	assert.True(t, valid)
}

func TestRecaptchaService_LowScore(t *testing.T) {
	srv := verifyServer(t, http.StatusOK, `{"success":true,"score":0.3}`)
	recaptcha := NewRecaptchaService(srv.URL, "verify-secret", 0.5, 5*time.Second)

	valid, err := recaptcha.Verify("", "proof-token")
	assert.NoError(t, err)
	assert.False(t, valid)
}

func TestRecaptchaService_NotSuccessful(t *testing.T) {
	srv := verifyServer(t, http.StatusOK, `{"success":false,"score":0.9}`)
	recaptcha := NewRecaptchaService(srv.URL, "verify-secret", 0.5, 5*time.Second)

	valid, err := recaptcha.Verify("", "proof-token")
	assert.NoError(t, err)
	assert.False(t, valid)
}

func TestRecaptchaService_FailsClosed(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"success":true,"score":0.9}`},
		{"malformed body", http.StatusOK, `not-json`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := verifyServer(t, tt.status, tt.body)
			recaptcha := NewRecaptchaService(srv.URL, "verify-secret", 0.5, 5*time.Second)

			valid, err := recaptcha.Verify("", "proof-token")
			assert.NoError(t, err)
			assert.False(t, valid)
		})
	}
}

func TestRecaptchaService_TransportError(t *testing.T) {
	// Nothing listens here
	recaptcha := NewRecaptchaService("http://127.0.0.1:1", "verify-secret", 0.5, time.Second)

	valid, err := recaptcha.Verify("", "proof-token")
	assert.Error(t, err)
	assert.False(t, valid)
}

func TestRecaptchaService_EmptyToken(t *testing.T) {
	recaptcha := NewRecaptchaService("http://127.0.0.1:1", "verify-secret", 0.5, time.Second)

	valid, err := recaptcha.Verify("", "")
	assert.NoError(t, err)
	assert.False(t, valid)
}

func TestRecaptchaService_IssueUnsupported(t *testing.T) {
	recaptcha := NewRecaptchaService("http://127.0.0.1:1", "verify-secret", 0.5, time.Second)

	_, err := recaptcha.Issue()
	assert.ErrorIs(t, err, ErrChallengeIssueUnsupported)
}
