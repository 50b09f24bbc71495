package utils

import (
	"errors"

	"github.com/jai-619/payment-backend/config"
	"github.com/jai-619/payment-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveTransaction stores a captured payment. The row is keyed by
// order_id, and a redelivered webhook for the same order overwrites
// the existing row so ingestion stays idempotent.
func SaveTransaction(tx *models.Transaction) error {
	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "order_id"}},
		UpdateAll: true,
	}).Create(tx).Error
	if err != nil {
		return WrapError(err, "failed to save transaction")
	}
	return nil
}

// GetTransactionByOrderID retrieves a transaction by its gateway order id
func GetTransactionByOrderID(orderID string) (*models.Transaction, error) {
	var tx models.Transaction
	err := config.DB.Where("order_id = ?", orderID).First(&tx).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFoundError("transaction not found", err)
		}
		return nil, WrapError(err, "failed to fetch transaction")
	}
	return &tx, nil
}
