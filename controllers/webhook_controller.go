package controllers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/jai-619/payment-backend/config"
	"github.com/jai-619/payment-backend/models"
	"github.com/jai-619/payment-backend/utils"
	"github.com/gin-gonic/gin"
)

const eventPaymentCaptured = "payment.captured"

// WebhookEvent is the envelope Razorpay posts to the webhook endpoint.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity PaymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// PaymentEntity is the nested payment object inside a webhook event.
type PaymentEntity struct {
	ID       string  `json:"id"`
	OrderID  string  `json:"order_id"`
	Status   string  `json:"status"`
	Amount   int64   `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"`
	Email    *string `json:"email"`
	Contact  *string `json:"contact"`
}

// POST /webhook
//
// The signature is an HMAC over the byte-exact request body, so the
// body is read and verified before any JSON decoding happens.
func HandleWebhook(c *gin.Context) {
	utils.LogInfo("HandleWebhook called")

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.LogError("Failed to read webhook body: %v", err)
		utils.BadRequest(c, "Failed to read request body", err.Error())
		return
	}

	signature := c.GetHeader("X-Razorpay-Signature")
	if !VerifyWebhookSignature(body, signature, config.App.RazorpayWebhookSecret) {
		utils.LogError("Webhook signature verification failed")
		utils.BadRequest(c, "Invalid webhook signature", nil)
		return
	}
	utils.LogDebug("Webhook signature verified")

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		utils.LogError("Failed to decode webhook payload: %v", err)
		utils.BadRequest(c, "Invalid webhook payload", err.Error())
		return
	}

	if event.Event == eventPaymentCaptured {
		p := event.Payload.Payment.Entity
		if p.ID == "" || p.OrderID == "" || p.Status == "" || p.Method == "" || p.Currency == "" || p.Amount <= 0 {
			utils.LogError("Webhook payload missing required payment fields - Order ID: %q, Payment ID: %q", p.OrderID, p.ID)
			utils.BadRequest(c, "Webhook payload missing required payment fields", nil)
			return
		}

		tx := models.Transaction{
			OrderID:   p.OrderID,
			PaymentID: p.ID,
			Status:    p.Status,
			Amount:    p.Amount,
			Currency:  p.Currency,
			Method:    p.Method,
			Email:     p.Email,
			Contact:   p.Contact,
		}
		if err := utils.SaveTransaction(&tx); err != nil {
			utils.LogError("Failed to record transaction for order ID: %s: %v", p.OrderID, err)
			utils.InternalServerError(c, "Failed to record transaction", err.Error())
			return
		}
		utils.LogInfo("Recorded captured payment - Order ID: %s, Payment ID: %s", p.OrderID, p.ID)
	} else {
		utils.LogDebug("Ignoring webhook event: %s", event.Event)
	}

	// Razorpay redelivers on non-2xx; every authenticated event is
	// acknowledged with this exact body.
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
