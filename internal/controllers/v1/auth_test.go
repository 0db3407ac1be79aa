package v1_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	v1 "github.com/tankbudget/backend/internal/controllers/v1"
	"github.com/tankbudget/backend/internal/models"
	"github.com/tankbudget/backend/test"
)

func (suite *TestSuiteStandard) TestSignupLoginVerify() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/signup", v1.SignupRequest{
		Username:  "jdoe",
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "Jane@Example.com",
		Password:  "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var signup v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &signup)
	suite.Assert().Equal("jane@example.com", signup.Data.User.Email)
	suite.Assert().NotEmpty(signup.Data.Token)
	suite.Assert().NotContains(r.Body.String(), "correct horse", "password must never be returned")

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", v1.LoginRequest{
		Email:    "jane@example.com",
		Password: "correct horse battery staple",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var login v1.SessionResponse
	test.DecodeResponse(suite.T(), &r, &login)
	suite.Assert().Equal(signup.Data.User.ID, login.Data.User.ID)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/auth/verify", "", map[string]string{
		"Authorization": "Bearer " + login.Data.Token,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var verify v1.UserResponse
	test.DecodeResponse(suite.T(), &r, &verify)
	suite.Assert().Equal("jdoe", verify.Data.Username)
}

func (suite *TestSuiteStandard) TestSignupFails() {
	_, _ = test.User(suite.T(), "taken")

	tests := []struct {
		name    string
		body    any
		status  int
		message string
	}{
		{"Empty body", "", http.StatusBadRequest, "must not be empty"},
		{"No username", v1.SignupRequest{Email: "a@example.com", Password: "long enough"}, http.StatusBadRequest, "Username is required"},
		{"Invalid email", v1.SignupRequest{Username: "a", Email: "nope", Password: "long enough"}, http.StatusBadRequest, "invalid email format"},
		{"Short password", v1.SignupRequest{Username: "a", Email: "a@example.com", Password: "short"}, http.StatusBadRequest, "Password must be at least 8"},
		{"Email taken", v1.SignupRequest{Username: "other", Email: "taken@example.com", Password: "long enough"}, http.StatusBadRequest, models.ErrEmailNotUnique.Error()},
		{"Username taken", v1.SignupRequest{Username: "taken", Email: "other@example.com", Password: "long enough"}, http.StatusBadRequest, models.ErrUsernameNotUnique.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/signup", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, r.Body.String(), tt.message)
		})
	}
}

func (suite *TestSuiteStandard) TestLoginFails() {
	_, _ = test.User(suite.T(), "jdoe")

	tests := []struct {
		name   string
		body   v1.LoginRequest
		status int
	}{
		{"Unknown email", v1.LoginRequest{Email: "nobody@example.com", Password: "testing-password"}, http.StatusUnauthorized},
		{"Wrong password", v1.LoginRequest{Email: "jdoe@example.com", Password: "wrong-password"}, http.StatusUnauthorized},
		{"No password", v1.LoginRequest{Email: "jdoe@example.com"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/auth/login", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	// Unknown emails and wrong passwords are indistinguishable
	unknown := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", tests[0].body)
	wrong := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/auth/login", tests[1].body)
	suite.Assert().Equal(unknown.Body.String(), wrong.Body.String())
}

func (suite *TestSuiteStandard) TestVerifyDeletedUser() {
	id, header := test.User(suite.T(), "gone")
	suite.Require().Nil(models.DB.Where("id = ?", id).Delete(&models.User{}).Error)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/auth/verify", "", header)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}

func (suite *TestSuiteStandard) TestUnauthorized() {
	tests := []struct {
		method string
		url    string
	}{
		{http.MethodGet, "http://example.com/v1/auth/verify"},
		{http.MethodGet, "http://example.com/v1/categories"},
		{http.MethodPost, "http://example.com/v1/categories"},
		{http.MethodPut, "http://example.com/v1/categories"},
		{http.MethodPatch, "http://example.com/v1/categories"},
		{http.MethodPost, "http://example.com/v1/categories/targets"},
		{http.MethodDelete, "http://example.com/v1/categories"},
		{http.MethodGet, "http://example.com/v1/expenses"},
		{http.MethodPost, "http://example.com/v1/expenses"},
		{http.MethodPut, "http://example.com/v1/expenses"},
		{http.MethodDelete, "http://example.com/v1/expenses"},
		{http.MethodGet, "http://example.com/v1/expenses/category-remaining"},
		{http.MethodGet, "http://example.com/v1/incomes"},
		{http.MethodPost, "http://example.com/v1/incomes"},
		{http.MethodPut, "http://example.com/v1/incomes"},
		{http.MethodDelete, "http://example.com/v1/incomes"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method+" "+tt.url, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)

			r = test.Request(t, tt.method, tt.url, "", map[string]string{"Authorization": "Bearer invalid"})
			test.AssertHTTPStatus(t, &r, http.StatusUnauthorized)
		})
	}
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		url   string
		allow string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/auth/signup", "OPTIONS, POST"},
		{"http://example.com/v1/auth/login", "OPTIONS, POST"},
		{"http://example.com/v1/auth/verify", "OPTIONS, GET"},
		{"http://example.com/v1/categories", "OPTIONS, GET, POST, PUT, PATCH, DELETE"},
		{"http://example.com/v1/categories/targets", "OPTIONS, POST"},
		{"http://example.com/v1/expenses", "OPTIONS, GET, POST, PUT, DELETE"},
		{"http://example.com/v1/expenses/category-remaining", "OPTIONS, GET"},
		{"http://example.com/v1/incomes", "OPTIONS, GET, POST, PUT, DELETE"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.url, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestGetV1() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("http://example.com/v1/categories", response.Links.Categories)
	suite.Assert().Equal("http://example.com/v1/expenses", response.Links.Expenses)
	suite.Assert().Equal("http://example.com/v1/incomes", response.Links.Incomes)
	suite.Assert().Equal("http://example.com/v1/auth", response.Links.Auth)
}
