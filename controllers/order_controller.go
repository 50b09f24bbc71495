package controllers

import (
	"strconv"
	"time"

	"github.com/jai-619/payment-backend/config"
	"github.com/jai-619/payment-backend/utils"
	"github.com/gin-gonic/gin"
)

// CreateOrderRequest is the body accepted by POST /create_order.
// Amount is in major currency units (rupees for INR).
type CreateOrderRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// POST /create_order
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid order request: %v", err)
		utils.BadRequest(c, "Invalid request. amount is required and must be a positive integer", err.Error())
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}
	receipt := req.Receipt
	if receipt == "" {
		receipt = "rcpt_" + strconv.FormatInt(time.Now().UnixNano(), 10)
	}

	// Razorpay expects the amount in paise
	amountPaise := req.Amount * 100
	utils.LogDebug("Creating order - Amount: %d paise, Currency: %s, Receipt: %s", amountPaise, currency, receipt)

	orderData := map[string]interface{}{
		"amount":          amountPaise,
		"currency":        currency,
		"receipt":         receipt,
		"payment_capture": 1,
	}
	rzOrder, err := PaymentGateway.CreateOrder(orderData)
	if err != nil {
		utils.LogError("Failed to create Razorpay order: %v", err)
		utils.InternalServerError(c, "Failed to create Razorpay order", err.Error())
		return
	}
	utils.LogInfo("Successfully created Razorpay order - Order ID: %v", rzOrder["id"])

	utils.Created(c, "Order created successfully", gin.H{
		"order_id": rzOrder["id"],
		"amount":   amountPaise,
		"currency": currency,
		"key_id":   config.App.RazorpayKeyID,
	})
}
