package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_MissingFields(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/register", map[string]string{
		"firstName": "Thandi",
		"email":     "thandi@example.com",
		"password":  "s3cret",
	}, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "All fields are required", decodeBody[MessageResponse](t, recorder).Message)
}

func TestRegister_ThenDuplicate(t *testing.T) {
	router, _ := newTestServer(t)

	body := map[string]string{
		"firstName": "Thandi",
		"lastName":  "Nkosi",
		"email":     "thandi@example.com",
		"password":  "s3cret",
	}

	first := doJSON(t, router, http.MethodPost, "/api/register", body, nil)
	require.Equal(t, http.StatusCreated, first.Code)

	created := decodeBody[registerResponse](t, first)
	assert.Equal(t, "Registered successfully", created.Message)
	assert.NotZero(t, created.UserID)

	second := doJSON(t, router, http.MethodPost, "/api/register", body, nil)
	require.Equal(t, http.StatusBadRequest, second.Code)
	assert.Equal(t, "User already exists", decodeBody[MessageResponse](t, second).Message)
}

func TestLogin_Success(t *testing.T) {
	router, _ := newTestServer(t)

	register := doJSON(t, router, http.MethodPost, "/api/register", map[string]string{
		"firstName": "Thandi",
		"lastName":  "Nkosi",
		"email":     "thandi@example.com",
		"password":  "s3cret",
	}, nil)
	require.Equal(t, http.StatusCreated, register.Code)

	login := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"email":    "thandi@example.com",
		"password": "s3cret",
	}, nil)
	require.Equal(t, http.StatusOK, login.Code)

	type loginResult struct {
		Message string `json:"message"`
		User    struct {
			ID        int64  `json:"id"`
			FirstName string `json:"firstName"`
			LastName  string `json:"lastName"`
			Email     string `json:"email"`
		} `json:"user"`
	}
	response := decodeBody[loginResult](t, login)

	assert.Equal(t, "Login successful", response.Message)
	assert.Equal(t, "Thandi", response.User.FirstName)
	assert.Equal(t, "thandi@example.com", response.User.Email)
	assert.NotZero(t, response.User.ID)
}

// Wrong password and unknown email must return the same status and body.
func TestLogin_FailurePayloadsAreIndistinguishable(t *testing.T) {
	router, _ := newTestServer(t)

	register := doJSON(t, router, http.MethodPost, "/api/register", map[string]string{
		"firstName": "Thandi",
		"lastName":  "Nkosi",
		"email":     "thandi@example.com",
		"password":  "s3cret",
	}, nil)
	require.Equal(t, http.StatusCreated, register.Code)

	wrongPassword := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"email":    "thandi@example.com",
		"password": "nope",
	}, nil)
	unknownEmail := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "s3cret",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestLogin_MissingFields(t *testing.T) {
	router, _ := newTestServer(t)

	recorder := doJSON(t, router, http.MethodPost, "/api/login", map[string]string{
		"email": "thandi@example.com",
	}, nil)

	require.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "Email and password required", decodeBody[MessageResponse](t, recorder).Message)
}
