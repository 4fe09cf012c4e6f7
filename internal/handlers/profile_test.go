package handlers_test

import (
	"net/http"
	"testing"

	"github.com/hirehub-dev/hirehub/internal/types"
)

func TestCreateEmployeeProfile(t *testing.T) {
	env := newTestEnv()

	user := env.createUser(t, "Alice", "alice@mail.test")

	body := map[string]interface{}{
		"name":                "Alice",
		"years_of_experience": 4,
		"university":          "State University",
		"degree":              "BSc",
		"resume":              "resumes/alice.pdf",
		"email":               "alice@mail.test",
		"user":                999, // must be ignored; owner comes from the token
	}

	recorder := env.do(t, http.MethodPost, "/api/employee/update-profile/", tokenFor(t, user), body)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response types.EmployeeResponse
	decodeBody(t, recorder, &response)

	if response.User != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, response.User)
	}
	if response.YearsOfExperience != 4 {
		t.Errorf("expected 4 years of experience, got %d", response.YearsOfExperience)
	}
}

func TestCreateEmployeeProfileTwice(t *testing.T) {
	env := newTestEnv()

	user := env.createUser(t, "Alice", "alice@mail.test")
	env.createEmployee(t, user)

	body := map[string]interface{}{
		"name":                "Alice",
		"years_of_experience": 4,
		"email":               "alice@mail.test",
	}

	recorder := env.do(t, http.MethodPost, "/api/employee/update-profile/", tokenFor(t, user), body)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestCreateEmployeeProfileRejectsNegativeExperience(t *testing.T) {
	env := newTestEnv()

	user := env.createUser(t, "Alice", "alice@mail.test")

	body := map[string]interface{}{
		"name":                "Alice",
		"years_of_experience": -1,
		"email":               "alice@mail.test",
	}

	recorder := env.do(t, http.MethodPost, "/api/employee/update-profile/", tokenFor(t, user), body)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestUpdateEmployeeProfilePartial(t *testing.T) {
	env := newTestEnv()

	user := env.createUser(t, "Alice", "alice@mail.test")
	env.createEmployee(t, user)

	body := map[string]interface{}{"university": "Tech Institute"}

	recorder := env.do(t, http.MethodPut, "/api/employee/update-profile/", tokenFor(t, user), body)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response types.EmployeeResponse
	decodeBody(t, recorder, &response)

	if response.University != "Tech Institute" {
		t.Errorf("expected updated university, got %q", response.University)
	}
	if response.Name != "Alice" {
		t.Errorf("expected name unchanged, got %q", response.Name)
	}
	if response.YearsOfExperience != 3 {
		t.Errorf("expected years of experience unchanged, got %d", response.YearsOfExperience)
	}
}

func TestUpdateEmployeeProfileWithoutProfile(t *testing.T) {
	env := newTestEnv()

	user := env.createUser(t, "Alice", "alice@mail.test")

	recorder := env.do(t, http.MethodPut, "/api/employee/update-profile/", tokenFor(t, user), map[string]interface{}{"name": "A"})

	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
}

func TestCreateEmployerProfile(t *testing.T) {
	env := newTestEnv()

	user := env.createUser(t, "Acme Owner", "owner@acme.test")

	body := map[string]interface{}{
		"company_name":        "Acme",
		"company_description": "We make everything",
		"email":               "jobs@acme.test",
	}

	recorder := env.do(t, http.MethodPost, "/api/employer/update-profile/", tokenFor(t, user), body)

	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response types.EmployerResponse
	decodeBody(t, recorder, &response)

	if response.User != user.ID {
		t.Errorf("expected user %d, got %d", user.ID, response.User)
	}
	if response.CompanyName != "Acme" {
		t.Errorf("expected company name Acme, got %q", response.CompanyName)
	}
}

func TestCreateEmployerProfileTwice(t *testing.T) {
	env := newTestEnv()

	user := env.createUser(t, "Acme Owner", "owner@acme.test")
	env.createEmployer(t, user, "Acme")

	body := map[string]interface{}{
		"company_name": "Acme Again",
		"email":        "jobs@acme.test",
	}

	recorder := env.do(t, http.MethodPost, "/api/employer/update-profile/", tokenFor(t, user), body)

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
}

func TestUpdateEmployerProfilePartial(t *testing.T) {
	env := newTestEnv()

	user := env.createUser(t, "Acme Owner", "owner@acme.test")
	env.createEmployer(t, user, "Acme")

	body := map[string]interface{}{"company_description": "Now with rockets"}

	recorder := env.do(t, http.MethodPut, "/api/employer/update-profile/", tokenFor(t, user), body)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response types.EmployerResponse
	decodeBody(t, recorder, &response)

	if response.CompanyDescription != "Now with rockets" {
		t.Errorf("expected updated description, got %q", response.CompanyDescription)
	}
	if response.CompanyName != "Acme" {
		t.Errorf("expected company name unchanged, got %q", response.CompanyName)
	}
}

func TestProfileEndpointsRequireAuthentication(t *testing.T) {
	env := newTestEnv()

	endpoints := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/employee/update-profile/"},
		{http.MethodPut, "/api/employee/update-profile/"},
		{http.MethodPost, "/api/employer/update-profile/"},
		{http.MethodPut, "/api/employer/update-profile/"},
	}

	for _, endpoint := range endpoints {
		recorder := env.do(t, endpoint.method, endpoint.path, "", map[string]interface{}{})
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", endpoint.method, endpoint.path, recorder.Code)
		}
	}
}
