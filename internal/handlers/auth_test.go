package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"saarthi/internal/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	r := setupServer(t)

	token := registerUser(t, r, "arjuna")

	// Token subject round-trips to the username
	claims, err := utils.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "arjuna", claims.Subject)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var me struct {
		Username string `json:"username"`
		Name     string `json:"name"`
	}
	decodeBody(t, w, &me)
	assert.Equal(t, "arjuna", me.Username)
	assert.Equal(t, "Test arjuna", me.Name)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	r := setupServer(t)

	registerUser(t, r, "arjuna")

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "arjuna",
		"name":     "Imposter",
		"password": "password456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterShortPassword(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "arjuna",
		"name":     "Arjuna",
		"password": "short",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	r := setupServer(t)

	registerUser(t, r, "arjuna")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "arjuna",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginUnknownUser(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "nobody",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginSuccess(t *testing.T) {
	r := setupServer(t)

	registerUser(t, r, "arjuna")

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"username": "arjuna",
		"password": "password123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeBody(t, w, &resp)
	assert.Equal(t, "bearer", resp.TokenType)

	claims, err := utils.ParseToken(resp.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "arjuna", claims.Subject)
}

func TestMeWithoutToken(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeWithGarbageToken(t *testing.T) {
	r := setupServer(t)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
