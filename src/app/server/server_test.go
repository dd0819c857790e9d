package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photoboard/src/infra/config"
	"photoboard/src/infra/repo"
	"photoboard/src/infra/token"
)

type testServer struct {
	srv   *Server
	store *repo.MemoryRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080},
		Log:    config.LogConfig{Level: "error", Format: "text"},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := repo.NewMemoryRepository()
	tokens := token.New(token.Config{Secret: "test-secret", TTL: time.Hour})

	srv, err := New(cfg, log, store, tokens)
	require.NoError(t, err)

	return &testServer{srv: srv, store: store}
}

func (ts *testServer) do(t *testing.T, method, path, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	rec := httptest.NewRecorder()
	ts.srv.Router().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func (ts *testServer) signUp(t *testing.T, email string) map[string]any {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":"longenough","name":"Ann","about":"Hi","avatar":"https://x.com/a.png"}`, email)
	rec := ts.do(t, http.MethodPost, "/sign-up", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode(t, rec)
}

func (ts *testServer) signIn(t *testing.T, email string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":"longenough"}`, email)
	rec := ts.do(t, http.MethodPost, "/sign-in", body, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	tok, _ := decode(t, rec)["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func TestSignUp_CreatesIdentityWithoutPasswordExposure(t *testing.T) {
	ts := newTestServer(t)

	user := ts.signUp(t, "a@b.com")
	assert.Equal(t, "a@b.com", user["email"])
	assert.NotEmpty(t, user["id"])
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
}

func TestSignUp_DuplicateEmailConflicts(t *testing.T) {
	ts := newTestServer(t)

	ts.signUp(t, "a@b.com")

	body := `{"email":"a@b.com","password":"longenough"}`
	rec := ts.do(t, http.MethodPost, "/sign-up", body, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"message":"an account with that email already exists"}`, rec.Body.String())
}

func TestSignUp_OverlongPasswordIsBadRequest(t *testing.T) {
	ts := newTestServer(t)

	body := fmt.Sprintf(`{"email":"a@b.com","password":%q}`, strings.Repeat("p", 100))
	rec := ts.do(t, http.MethodPost, "/sign-up", body, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"password must be at most 72 bytes"}`, rec.Body.String())
}

func TestSignUp_ValidationRejectsBeforeStorage(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"longenough"}`},
		{"bad email", `{"email":"not-an-email","password":"longenough"}`},
		{"short password", `{"email":"a@b.com","password":"short"}`},
		{"short name", `{"email":"a@b.com","password":"longenough","name":"A"}`},
		{"long about", `{"email":"a@b.com","password":"longenough","about":"` + strings.Repeat("x", 31) + `"}`},
		{"avatar without scheme", `{"email":"a@b.com","password":"longenough","avatar":"x.com/a.png"}`},
		{"relative avatar", `{"email":"a@b.com","password":"longenough","avatar":"/a.png"}`},
		{"not json", `not json at all`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/sign-up", tt.body, "")
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	// None of the rejected payloads may have created an identity.
	rec := ts.do(t, http.MethodPost, "/sign-in", `{"email":"a@b.com","password":"longenough"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignIn_UniformUnauthorizedMessage(t *testing.T) {
	ts := newTestServer(t)
	ts.signUp(t, "a@b.com")

	wrongPassword := ts.do(t, http.MethodPost, "/sign-in", `{"email":"a@b.com","password":"not-the-one"}`, "")
	unknownEmail := ts.do(t, http.MethodPost, "/sign-in", `{"email":"nobody@b.com","password":"longenough"}`, "")

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestProtectedEndpoints_RequireValidToken(t *testing.T) {
	ts := newTestServer(t)
	ts.signUp(t, "a@b.com")
	tok := ts.signIn(t, "a@b.com")

	tests := []struct {
		name   string
		bearer string
	}{
		{"no token", ""},
		{"garbage token", "garbage"},
		{"tampered signature", tok + "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodGet, "/users/me", "", tt.bearer)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"message":"authorization required"}`, rec.Body.String())
		})
	}
}

func TestAuthMiddleware_MalformedHeaderSchemes(t *testing.T) {
	ts := newTestServer(t)
	ts.signUp(t, "a@b.com")
	tok := ts.signIn(t, "a@b.com")

	for _, header := range []string{tok, "Basic " + tok, "bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		ts.srv.Router().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestUsersMe_ResolvesTokenIdentity(t *testing.T) {
	ts := newTestServer(t)
	created := ts.signUp(t, "a@b.com")
	tok := ts.signIn(t, "a@b.com")

	rec := ts.do(t, http.MethodGet, "/users/me", "", tok)
	require.Equal(t, http.StatusOK, rec.Code)

	me := decode(t, rec)
	assert.Equal(t, created["id"], me["id"])
	assert.Equal(t, "a@b.com", me["email"])
}

func TestUsersByID_IdentifierClassification(t *testing.T) {
	ts := newTestServer(t)
	created := ts.signUp(t, "a@b.com")
	tok := ts.signIn(t, "a@b.com")

	rec := ts.do(t, http.MethodGet, "/users/not-a-uuid", "", tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"invalid data supplied"}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/users/00000000-0000-0000-0000-000000000001", "", tok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"user with the specified id was not found"}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/users/"+created["id"].(string), "", tok)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfileAndAvatar(t *testing.T) {
	ts := newTestServer(t)
	ts.signUp(t, "a@b.com")
	tok := ts.signIn(t, "a@b.com")

	rec := ts.do(t, http.MethodPatch, "/users/me", `{"name":"New Name","about":"New About"}`, tok)
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decode(t, rec)
	assert.Equal(t, "New Name", updated["name"])
	assert.Equal(t, "New About", updated["about"])

	// about is required on profile updates
	rec = ts.do(t, http.MethodPatch, "/users/me", `{"name":"Only Name"}`, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPatch, "/users/me/avatar", `{"avatar":"https://x.com/new.png"}`, tok)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://x.com/new.png", decode(t, rec)["avatar"])

	rec = ts.do(t, http.MethodPatch, "/users/me/avatar", `{"avatar":"x.com/new.png"}`, tok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCards_CreateListDelete(t *testing.T) {
	ts := newTestServer(t)
	ts.signUp(t, "owner@b.com")
	ts.signUp(t, "other@b.com")
	ownerTok := ts.signIn(t, "owner@b.com")
	otherTok := ts.signIn(t, "other@b.com")

	rec := ts.do(t, http.MethodPost, "/cards", `{"name":"Sunset","link":"https://x.com/sunset.png"}`, ownerTok)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	card := decode(t, rec)
	cardID := card["id"].(string)
	assert.Empty(t, card["likes"])

	// Non-owner delete is forbidden and the card must survive.
	rec = ts.do(t, http.MethodDelete, "/cards/"+cardID, "", otherTok)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"cannot delete another user's card"}`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/cards", "", otherTok)
	require.Equal(t, http.StatusOK, rec.Code)
	var cards []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	assert.Len(t, cards, 1)

	// Owner delete succeeds; a second attempt is not found.
	rec = ts.do(t, http.MethodDelete, "/cards/"+cardID, "", ownerTok)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/cards/"+cardID, "", ownerTok)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCards_LikeUnlikeIdempotence(t *testing.T) {
	ts := newTestServer(t)
	ts.signUp(t, "owner@b.com")
	liker := ts.signUp(t, "liker@b.com")
	ownerTok := ts.signIn(t, "owner@b.com")
	likerTok := ts.signIn(t, "liker@b.com")

	rec := ts.do(t, http.MethodPost, "/cards", `{"name":"Sunset","link":"https://x.com/sunset.png"}`, ownerTok)
	require.Equal(t, http.StatusOK, rec.Code)
	cardID := decode(t, rec)["id"].(string)

	// Liking twice leaves exactly one entry.
	for i := 0; i < 2; i++ {
		rec = ts.do(t, http.MethodPut, "/cards/"+cardID+"/likes", "", likerTok)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	likes := decode(t, rec)["likes"].([]any)
	require.Len(t, likes, 1)
	assert.Equal(t, liker["id"], likes[0])

	// Unliking removes it; unliking again is a no-op.
	for i := 0; i < 2; i++ {
		rec = ts.do(t, http.MethodDelete, "/cards/"+cardID+"/likes", "", likerTok)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode(t, rec)["likes"])
	}
}

func TestCards_CreateValidation(t *testing.T) {
	ts := newTestServer(t)
	ts.signUp(t, "a@b.com")
	tok := ts.signIn(t, "a@b.com")

	tests := []struct {
		name string
		body string
	}{
		{"missing link", `{"name":"Sunset"}`},
		{"link without scheme", `{"name":"Sunset","link":"x.com/a.png"}`},
		{"short name", `{"name":"S","link":"https://x.com/a.png"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := ts.do(t, http.MethodPost, "/cards", tt.body, tok)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	rec := ts.do(t, http.MethodGet, "/cards", "", tok)
	require.Equal(t, http.StatusOK, rec.Code)
	var cards []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cards))
	assert.Empty(t, cards)
}

func TestUnmatchedRoute_ReturnsNotFound(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/no-such-route", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"the requested resource was not found"}`, rec.Body.String())
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}
