package controllers_test

import (
	"net/http"
	"testing"

	"github.com/jai-619/payment-backend/models"
	"github.com/jai-619/payment-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTransactionNotFound(t *testing.T) {
	setupTestConfig()
	requireDB(t)

	status, body := doRequest(t, newRouter(), http.MethodGet, "/transactions/order_missing", nil, nil)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Transaction not found", body["message"])
}

func TestGetTransactionReturnsStoredRow(t *testing.T) {
	setupTestConfig()
	requireDB(t)

	email := "payer@example.com"
	require.NoError(t, utils.SaveTransaction(&models.Transaction{
		OrderID:   "order_q1",
		PaymentID: "pay_q1",
		Status:    "captured",
		Amount:    1500,
		Currency:  "INR",
		Method:    "upi",
		Email:     &email,
	}))

	status, body := doRequest(t, newRouter(), http.MethodGet, "/transactions/order_q1", nil, nil)

	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "order_q1", data["order_id"])
	assert.Equal(t, "pay_q1", data["payment_id"])
	assert.EqualValues(t, 1500, data["amount"])
	assert.Equal(t, "upi", data["method"])
	assert.Equal(t, email, data["email"])
	_, hasContact := data["contact"]
	assert.False(t, hasContact, "unset contact should be omitted")
}
