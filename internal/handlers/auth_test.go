package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wardrobe_catalog/internal/models"
	"wardrobe_catalog/internal/service"
)

func postJSON(t *testing.T, h http.Handler, path, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range header {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("unmarshal %q: %v", w.Body.String(), err)
	}
	return m
}

func TestAuthHandlers_RegisterAndLogin(t *testing.T) {
	alice := models.Identity{ID: 42, Username: "alice"}
	auth := &mockAuth{
		registerUser: alice, registerToken: "tok-reg",
		loginUser: alice, loginToken: "tok-login",
	}
	r := newTestRouter(&service.Service{Authorization: auth})

	// register success → 201
	w := postJSON(t, r, "/api/register", `{"username":"alice","password":"pw123"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status=%d, body=%s", w.Code, w.Body.String())
	}
	m := decodeBody(t, w)
	if m["token"] != "tok-reg" || m["message"] != msgRegistered {
		t.Fatalf("unexpected register body: %v", m)
	}
	user, _ := m["user"].(map[string]any)
	if int(user["id"].(float64)) != 42 || user["username"] != "alice" {
		t.Fatalf("unexpected user: %v", m["user"])
	}
	if auth.lastRegisterUsername != "alice" || auth.lastRegisterPassword != "pw123" {
		t.Fatalf("credentials not forwarded: %q/%q", auth.lastRegisterUsername, auth.lastRegisterPassword)
	}

	// login success → 200
	w = postJSON(t, r, "/api/login", `{"username":"alice","password":"pw123"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login status=%d, body=%s", w.Code, w.Body.String())
	}
	m = decodeBody(t, w)
	if m["token"] != "tok-login" || m["message"] != msgLoggedIn {
		t.Fatalf("unexpected login body: %v", m)
	}
}

func TestAuthHandlers_Errors(t *testing.T) {
	cases := []struct {
		name    string
		path    string
		body    string
		auth    *mockAuth
		code    int
		message string
	}{
		{"register missing password", "/api/register", `{"username":"alice"}`, &mockAuth{}, http.StatusBadRequest, msgCredentialsRequired},
		{"register wrong types", "/api/register", `{"username":1}`, &mockAuth{}, http.StatusBadRequest, msgCredentialsRequired},
		{"register duplicate", "/api/register", `{"username":"a","password":"p"}`, &mockAuth{registerErr: service.ErrUserExists}, http.StatusBadRequest, msgUserExists},
		{"register store failure", "/api/register", `{"username":"a","password":"p"}`, &mockAuth{registerErr: errors.New("disk full")}, http.StatusInternalServerError, msgServerError},
		{"login empty body", "/api/login", `{}`, &mockAuth{}, http.StatusBadRequest, msgCredentialsRequired},
		{"login bad credentials", "/api/login", `{"username":"a","password":"p"}`, &mockAuth{loginErr: service.ErrInvalidCredentials}, http.StatusBadRequest, msgInvalidCredentials},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRouter(&service.Service{Authorization: tc.auth})
			w := postJSON(t, r, tc.path, tc.body, nil)
			if w.Code != tc.code {
				t.Fatalf("status=%d, want %d (body=%s)", w.Code, tc.code, w.Body.String())
			}
			if got := decodeBody(t, w)["message"]; got != tc.message {
				t.Fatalf("message=%v, want %q", got, tc.message)
			}
		})
	}
}
