package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/jai-619/payment-backend/config"
	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway abstracts order creation with the payment provider so that
// handlers can be exercised without network access.
type Gateway interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
}

// PaymentGateway is the gateway used by the handlers. Tests swap it
// for a stub.
var PaymentGateway Gateway = razorpayGateway{}

type razorpayGateway struct{}

func (razorpayGateway) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	client := razorpay.NewClient(config.App.RazorpayKeyID, config.App.RazorpayKeySecret)
	return client.Order.Create(data, nil)
}

// VerifyWebhookSignature checks the X-Razorpay-Signature value against
// an HMAC-SHA256 digest of the raw webhook body. A missing signature
// never verifies.
func VerifyWebhookSignature(body []byte, signature, secret string) bool {
	if signature == "" {
		return false
	}
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	expected := hex.EncodeToString(h.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
