package http

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-app-config/internal/logger"
	"github.com/MKhiriev/go-app-config/internal/mock"
	"github.com/MKhiriev/go-app-config/internal/service"
	"github.com/MKhiriev/go-app-config/models"
	"github.com/go-jose/go-jose/v4"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testKeyID = "signing-key"

// ---- Helpers ----

type testEnv struct {
	server *httptest.Server
	app    *mock.MockAppConfiguration
	key    *rsa.PrivateKey
	jwks   string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	raw, err := json.Marshal(jose.JSONWebKeySet{Keys: []jose.JSONWebKey{{
		Key:       &key.PublicKey,
		KeyID:     testKeyID,
		Algorithm: "RS256",
		Use:       "sig",
	}}})
	require.NoError(t, err)

	app := mock.NewMockAppConfiguration(gomock.NewController(t))
	snapshot := models.Snapshot{
		Values:  map[string]string{"server-port": "8080", "example/server-port": "9090"},
		JWKS:    string(raw),
		Version: "1.2.3",
	}

	h := NewHandler(&service.Services{AppConfiguration: app}, snapshot, logger.Nop())
	server := httptest.NewServer(h.Init())
	t.Cleanup(server.Close)

	return &testEnv{server: server, app: app, key: key, jwks: string(raw)}
}

func (e *testEnv) token(t *testing.T, expiresIn time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   "deployer",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	})
	token.Header["kid"] = testKeyID

	signed, err := token.SignedString(e.key)
	require.NoError(t, err)
	return signed
}

func (e *testEnv) do(t *testing.T, method, path, authHeader string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequest(method, e.server.URL+path, nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

// ---- Public routes ----

func TestHandler_Health(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/health", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body)
}

func TestHandler_Version(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/api/version/", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
	assert.Equal(t, "1.2.3", body)
}

func TestHandler_JWKS(t *testing.T) {
	env := newTestEnv(t)

	resp, body := env.do(t, http.MethodGet, "/.well-known/jwks.json", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.JSONEq(t, env.jwks, body)
}

func TestHandler_UnsupportedMethodIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodPost, "/api/version/", "")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ---- Middleware ----

func TestHandler_TraceID(t *testing.T) {
	env := newTestEnv(t)

	t.Run("generated", func(t *testing.T) {
		resp, _ := env.do(t, http.MethodGet, "/api/health", "")

		_, err := uuid.Parse(resp.Header.Get(traceIDHeader))
		assert.NoError(t, err)
	})

	t.Run("propagated", func(t *testing.T) {
		traceID := uuid.NewString()
		req, err := http.NewRequest(http.MethodGet, env.server.URL+"/api/health", nil)
		require.NoError(t, err)
		req.Header.Set(traceIDHeader, traceID)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, traceID, resp.Header.Get(traceIDHeader))
	})
}

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusTeapot)
	w.WriteHeader(http.StatusOK)
	_, err := w.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusTeapot, w.status)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

// ---- Protected routes ----

func TestHandler_Value(t *testing.T) {
	env := newTestEnv(t)
	bearer := "Bearer " + env.token(t, time.Hour)

	t.Run("loaded", func(t *testing.T) {
		resp, body := env.do(t, http.MethodGet, "/api/config/values/server-port", bearer)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "8080", body)
	})

	t.Run("key with slashes", func(t *testing.T) {
		resp, body := env.do(t, http.MethodGet, "/api/config/values/example/server-port", bearer)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "9090", body)
	})

	t.Run("not loaded", func(t *testing.T) {
		resp, body := env.do(t, http.MethodGet, "/api/config/values/db-host", bearer)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, ErrValueNotLoaded.Error())
	})
}

func TestHandler_StoreStatus(t *testing.T) {
	env := newTestEnv(t)
	env.app.EXPECT().Status(gomock.Any()).Return(models.HealthStatus{StatusCode: http.StatusOK})

	resp, body := env.do(t, http.MethodGet, "/api/config/status", "Bearer "+env.token(t, time.Hour))

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status_code":200,"reachable":true,"ok":true}`, body)
}

func TestHandler_Auth_Rejects(t *testing.T) {
	env := newTestEnv(t)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	foreign := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{Subject: "intruder"})
	foreign.Header["kid"] = testKeyID
	foreignToken, err := foreign.SignedString(otherKey)
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantBody string
	}{
		{name: "no header", header: "", wantBody: ErrEmptyAuthorizationHeader.Error()},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantBody: ErrInvalidAuthorizationHeader.Error()},
		{name: "expired", header: "Bearer " + env.token(t, -time.Hour), wantBody: ErrTokenIsExpired.Error()},
		{name: "foreign key", header: "Bearer " + foreignToken, wantBody: http.StatusText(http.StatusUnauthorized)},
		{name: "garbage", header: "Bearer not-a-jwt", wantBody: http.StatusText(http.StatusUnauthorized)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := env.do(t, http.MethodGet, "/api/config/values/server-port", tt.header)

			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Contains(t, body, tt.wantBody)
		})
	}
}

func TestHandler_Auth_NoUsableKeySet(t *testing.T) {
	h := NewHandler(&service.Services{}, models.Snapshot{JWKS: "not a key set"}, logger.Nop())
	server := httptest.NewServer(h.Init())
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/config/values/any", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer a.b.c")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lower-case scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrInvalidAuthorizationHeader},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "only spaces after scheme", header: "Bearer   ", wantErr: ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- Key set exposure ----

const hmacSecret = "super-secret-signing-key-32-bytes"

func hmacKeySetJSON(t *testing.T) string {
	t.Helper()
	raw, err := json.Marshal(jose.JSONWebKeySet{Keys: []jose.JSONWebKey{{
		Key:       []byte(hmacSecret),
		KeyID:     "hmac",
		Algorithm: "HS256",
	}}})
	require.NoError(t, err)
	return string(raw)
}

func newServerWithJWKS(t *testing.T, jwks string) *httptest.Server {
	t.Helper()
	snapshot := models.Snapshot{
		Values: map[string]string{"db-password": "hunter2"},
		JWKS:   jwks,
	}
	h := NewHandler(&service.Services{}, snapshot, logger.Nop())
	server := httptest.NewServer(h.Init())
	t.Cleanup(server.Close)
	return server
}

func getBody(t *testing.T, url, authHeader string) (int, string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func forgeHMACToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "forger",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token.Header["kid"] = "hmac"
	signed, err := token.SignedString([]byte(hmacSecret))
	require.NoError(t, err)
	return signed
}

func TestHandler_JWKS_SymmetricKeysNotServed(t *testing.T) {
	server := newServerWithJWKS(t, hmacKeySetJSON(t))

	status, body := getBody(t, server.URL+"/.well-known/jwks.json", "")

	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"keys":[]}`, body)
	assert.NotContains(t, body, `"k"`)
}

func TestHandler_JWKS_PrivateMembersNotServed(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	raw, err := json.Marshal(jose.JSONWebKeySet{Keys: []jose.JSONWebKey{
		{Key: key, KeyID: testKeyID, Algorithm: "RS256", Use: "sig"},
		{Key: []byte(hmacSecret), KeyID: "hmac", Algorithm: "HS256"},
	}})
	require.NoError(t, err)
	server := newServerWithJWKS(t, string(raw))

	status, body := getBody(t, server.URL+"/.well-known/jwks.json", "")
	require.Equal(t, http.StatusOK, status)

	var served struct {
		Keys []map[string]any `json:"keys"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &served))
	require.Len(t, served.Keys, 1)
	assert.Equal(t, testKeyID, served.Keys[0]["kid"])
	for _, member := range []string{"d", "p", "q", "dp", "dq", "qi", "k"} {
		assert.NotContains(t, served.Keys[0], member)
	}

	t.Run("private key still signs valid tokens", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
			Subject:   "deployer",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		})
		token.Header["kid"] = testKeyID
		signed, err := token.SignedString(key)
		require.NoError(t, err)

		status, body := getBody(t, server.URL+"/api/config/values/db-password", "Bearer "+signed)

		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "hunter2", body)
	})

	t.Run("HS256 token refused", func(t *testing.T) {
		status, body := getBody(t, server.URL+"/api/config/values/db-password", "Bearer "+forgeHMACToken(t))

		assert.Equal(t, http.StatusUnauthorized, status)
		assert.NotContains(t, body, "hunter2")
	})
}

func TestHandler_Auth_HS256TokenRefused(t *testing.T) {
	server := newServerWithJWKS(t, hmacKeySetJSON(t))

	status, body := getBody(t, server.URL+"/api/config/values/db-password", "Bearer "+forgeHMACToken(t))

	assert.Equal(t, http.StatusUnauthorized, status)
	assert.NotContains(t, body, "hunter2")
}
