package models

import (
	"time"
)

// Transaction is a settled payment recorded from a payment.captured
// webhook event. Amount is in minor currency units (paise for INR).
type Transaction struct {
	OrderID   string    `json:"order_id" gorm:"primaryKey"`
	PaymentID string    `json:"payment_id"`
	Status    string    `json:"status"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Method    string    `json:"method"`
	Email     *string   `json:"email,omitempty"`
	Contact   *string   `json:"contact,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
