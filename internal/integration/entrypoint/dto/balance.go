// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/shopspring/decimal"

// RecordBalanceRequest represents the request body for recording a bank balance.
type RecordBalanceRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
	Note   string          `json:"note,omitempty"`
}
