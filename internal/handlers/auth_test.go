package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pixel_portfolio/internal/models"
	"pixel_portfolio/internal/service"
)

func doRequest(r http.Handler, method, path, body string, hdr http.Header) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vs := range hdr {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var out errorBody
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal error body %q: %v", w.Body.String(), err)
	}
	return out
}

func TestAuthHandlers_RegisterAndLogin(t *testing.T) {
	auth := &mockAuth{
		registerUser: models.PublicUser{ID: 42, Username: "alice"},
		loginRes: service.LoginResult{
			Token: "tok123",
			User:  models.PublicUser{ID: 42, Username: "alice"},
		},
	}
	r := newTestRouter(&service.Service{Authorization: auth})

	// register success
	w := doRequest(r, http.MethodPost, "/auth/register", `{"username":"alice","password":"secret1"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	var reg struct {
		Message string            `json:"message"`
		User    models.PublicUser `json:"user"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &reg)
	if reg.User.ID != 42 || reg.User.Username != "alice" || reg.Message == "" {
		t.Fatalf("unexpected register body: %s", w.Body.String())
	}
	if auth.lastRegUsername != "alice" || auth.lastRegPassword != "secret1" {
		t.Fatalf("register got %q/%q", auth.lastRegUsername, auth.lastRegPassword)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatalf("register response leaks password field: %s", w.Body.String())
	}

	// login success
	w = doRequest(r, http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret1"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	var res service.LoginResult
	_ = json.Unmarshal(w.Body.Bytes(), &res)
	if res.Token != "tok123" || res.User.ID != 42 {
		t.Fatalf("unexpected login body: %s", w.Body.String())
	}

	// login invalid body → 400
	w = doRequest(r, http.MethodPost, "/auth/login", `{"username":1}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad body, got %d", w.Code)
	}
	if got := decodeError(t, w); got.Code != string(service.KindValidation) {
		t.Fatalf("bad body code=%q", got.Code)
	}
}

func TestAuthHandlers_ServiceErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		name string
		auth *mockAuth
		path string
		want int
		kind service.Kind
	}{
		{
			name: "duplicate username",
			auth: &mockAuth{registerErr: &service.Error{Kind: service.KindDuplicateUsername, Message: "username already exists"}},
			path: "/auth/register",
			want: http.StatusBadRequest,
			kind: service.KindDuplicateUsername,
		},
		{
			name: "validation",
			auth: &mockAuth{registerErr: &service.Error{Kind: service.KindValidation, Message: "password must be at least 6 characters"}},
			path: "/auth/register",
			want: http.StatusBadRequest,
			kind: service.KindValidation,
		},
		{
			name: "invalid credentials",
			auth: &mockAuth{loginErr: &service.Error{Kind: service.KindInvalidCreds, Message: "invalid username or password"}},
			path: "/auth/login",
			want: http.StatusUnauthorized,
			kind: service.KindInvalidCreds,
		},
		{
			name: "plain error is internal",
			auth: &mockAuth{loginErr: errors.New("db down")},
			path: "/auth/login",
			want: http.StatusInternalServerError,
			kind: service.KindInternal,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: tc.auth})
			w := doRequest(r, http.MethodPost, tc.path, `{"username":"alice","password":"secret1"}`, nil)
			if w.Code != tc.want {
				t.Fatalf("status: got %d, want %d (body=%s)", w.Code, tc.want, w.Body.String())
			}
			if got := decodeError(t, w); got.Code != string(tc.kind) || got.Error == "" {
				t.Fatalf("unexpected error body: %+v", got)
			}
		})
	}
}

func TestAuthHandlers_InternalDetailOnlyInDebug(t *testing.T) {
	auth := &mockAuth{loginErr: errors.New("disk I/O error")}

	w := doRequest(newTestRouter(&service.Service{Authorization: auth}),
		http.MethodPost, "/auth/login", `{"username":"alice","password":"secret1"}`, nil)
	if strings.Contains(w.Body.String(), "disk I/O error") {
		t.Fatalf("cause leaked without debug: %s", w.Body.String())
	}

	w = doRequest(newTestRouter(&service.Service{Authorization: auth}, WithDebug(true)),
		http.MethodPost, "/auth/login", `{"username":"alice","password":"secret1"}`, nil)
	if !strings.Contains(w.Body.String(), "disk I/O error") {
		t.Fatalf("cause missing in debug mode: %s", w.Body.String())
	}
}

func TestAuthHandlers_Me(t *testing.T) {
	auth := &mockAuth{meUser: models.PublicUser{ID: 7, Username: "bob"}}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := doRequest(r, http.MethodGet, "/auth/me", "", authHeader("abc"))
	if w.Code != http.StatusOK {
		t.Fatalf("me status=%d body=%s", w.Code, w.Body.String())
	}
	var out struct {
		User models.PublicUser `json:"user"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.User.ID != 7 || out.User.Username != "bob" {
		t.Fatalf("unexpected me body: %s", w.Body.String())
	}
	if auth.lastAuthHeader != "Bearer abc" {
		t.Fatalf("header passed to service: %q", auth.lastAuthHeader)
	}

	auth.meErr = &service.Error{Kind: service.KindUserNotFound, Message: "user not found"}
	w = doRequest(r, http.MethodGet, "/auth/me", "", authHeader("abc"))
	if w.Code != http.StatusNotFound {
		t.Fatalf("deleted user: got %d", w.Code)
	}
}
