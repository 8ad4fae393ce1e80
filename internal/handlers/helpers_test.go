package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"saarthi/internal/db"
	"saarthi/internal/models"
	"saarthi/internal/router"
	"saarthi/internal/utils"
)

// setupServer wires a fresh in-memory database into the full route table.
func setupServer(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	os.Setenv("GEMINI_API_KEY", "")

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	db.DB = gdb

	// The listing cache is process-global; don't let one test feed another
	utils.GetCache().Delete("krishna:emotions:active")
	utils.GetCache().Delete("scriptures:active")

	r := gin.New()
	router.RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// registerUser creates an account through the API and returns its token.
func registerUser(t *testing.T, r *gin.Engine, username string) string {
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username,
		"name":     "Test " + username,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// promoteAdmin flips the admin flag directly in the database.
func promoteAdmin(t *testing.T, username string) {
	err := db.DB.Model(&models.User{}).Where("username = ?", username).Update("is_admin", true).Error
	require.NoError(t, err)
}
