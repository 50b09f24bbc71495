package controllers_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jai-619/payment-backend/config"
	"github.com/jai-619/payment-backend/routes"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

const (
	testKeyID         = "rzp_test_key"
	testWebhookSecret = "test_webhook_secret"
)

func setupTestConfig() {
	gin.SetMode(gin.TestMode)
	config.App = &config.Config{
		RazorpayKeyID:         testKeyID,
		RazorpayKeySecret:     "rzp_test_secret",
		RazorpayWebhookSecret: testWebhookSecret,
		DBHost:                os.Getenv("DB_HOST"),
		DBPort:                os.Getenv("DB_PORT"),
		DBUser:                os.Getenv("DB_USER"),
		DBPassword:            os.Getenv("DB_PASSWORD"),
		DBName:                os.Getenv("DB_NAME"),
		Port:                  "8080",
	}
}

// requireDB connects to the test database or skips the test when no
// database is configured in the environment.
func requireDB(t *testing.T) {
	t.Helper()
	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set; skipping database-backed test")
	}
	require.NoError(t, config.InitDB())
	require.NoError(t, config.DB.Exec("TRUNCATE TABLE transactions").Error)
}

func signBody(body []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hex.EncodeToString(h.Sum(nil))
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body []byte, headers map[string]string) (int, map[string]interface{}) {
	t.Helper()
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w.Code, parsed
}

func newRouter() *gin.Engine {
	return routes.SetupRouter()
}
