package controllers

import (
	"github.com/jai-619/payment-backend/utils"
	"github.com/gin-gonic/gin"
)

// GET /transactions/:order_id
func GetTransaction(c *gin.Context) {
	orderID := c.Param("order_id")
	utils.LogInfo("GetTransaction called for order ID: %s", orderID)

	tx, err := utils.GetTransactionByOrderID(orderID)
	if err != nil {
		if utils.IsNotFoundError(err) {
			utils.LogDebug("No transaction found for order ID: %s", orderID)
			utils.NotFound(c, "Transaction not found")
			return
		}
		utils.LogError("Failed to fetch transaction for order ID: %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to fetch transaction", err.Error())
		return
	}

	utils.Success(c, "Transaction retrieved successfully", tx)
}
