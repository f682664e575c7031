package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajsingh19/wearhouse/app/models"
)

type authResponse struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

func TestRegister(t *testing.T) {
	h, _ := setupAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/register", "", map[string]string{
		"name":     "New User",
		"email":    "new@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, models.RoleUser, out.User.Role)
	assert.NotEmpty(t, out.Token)

	// Same email again is rejected.
	rec = doJSON(t, h, http.MethodPost, "/api/register", "", map[string]string{
		"name":     "Duplicate",
		"email":    "new@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	h, _ := setupAPI(t)

	rec := doJSON(t, h, http.MethodPost, "/api/register", "", map[string]string{
		"email":    "not-an-email",
		"password": "123",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	out := decodeError(t, rec)
	assert.Contains(t, out.Details, "name")
	assert.Contains(t, out.Details, "email")
	assert.Contains(t, out.Details, "password")
}

func TestLogin(t *testing.T) {
	h, db := setupAPI(t)
	createUser(t, db, "login@example.com", models.RoleUser) // password secret123

	rec := doJSON(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out authResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Token)
	assert.Empty(t, out.User.Password)

	rec = doJSON(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "wrongpass",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
