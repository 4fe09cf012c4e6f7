package handlers_test

import (
	"net/http"
	"testing"
)

func TestRegisterTokenMeFlow(t *testing.T) {
	env := newTestEnv()

	register := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@mail.test",
		"password": "correct-horse",
	})

	if register.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", register.Code, register.Body.String())
	}

	var registered struct {
		Token string `json:"token"`
	}
	decodeBody(t, register, &registered)
	if registered.Token == "" {
		t.Fatal("register: expected a token in the response")
	}

	token := env.do(t, http.MethodPost, "/api/token/", "", map[string]string{
		"email":    "alice@mail.test",
		"password": "correct-horse",
	})

	if token.Code != http.StatusOK {
		t.Fatalf("token: expected 200, got %d: %s", token.Code, token.Body.String())
	}

	var issued struct {
		Token string `json:"token"`
	}
	decodeBody(t, token, &issued)
	if issued.Token == "" {
		t.Fatal("token: expected a token in the response")
	}

	me := env.do(t, http.MethodGet, "/api/auth/me", issued.Token, nil)

	if me.Code != http.StatusOK {
		t.Fatalf("me: expected 200, got %d: %s", me.Code, me.Body.String())
	}

	var whoami struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, me, &whoami)
	if whoami.User.Email != "alice@mail.test" {
		t.Errorf("me: expected alice@mail.test, got %q", whoami.User.Email)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv()

	env.createUser(t, "Alice", "alice@mail.test")

	recorder := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Alice Again",
		"email":    "alice@mail.test",
		"password": "correct-horse",
	})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestTokenWrongPassword(t *testing.T) {
	env := newTestEnv()

	register := env.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Alice",
		"email":    "alice@mail.test",
		"password": "correct-horse",
	})

	if register.Code != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", register.Code)
	}

	recorder := env.do(t, http.MethodPost, "/api/token/", "", map[string]string{
		"email":    "alice@mail.test",
		"password": "wrong-horse",
	})

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestMeRejectsGarbageToken(t *testing.T) {
	env := newTestEnv()

	recorder := env.do(t, http.MethodGet, "/api/auth/me", "not-a-token", nil)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}
}
