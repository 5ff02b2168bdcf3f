// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/shopspring/decimal"

// SaveTargetRequest represents the request body for saving one monthly target.
type SaveTargetRequest struct {
	SalesTarget      decimal.Decimal  `json:"sales_target" binding:"required"`
	CollectionTarget *decimal.Decimal `json:"collection_target,omitempty"`
}

// BulkTargetItemRequest is one month inside a bulk target save.
type BulkTargetItemRequest struct {
	Period           string           `json:"period" binding:"required"`
	SalesTarget      decimal.Decimal  `json:"sales_target" binding:"required"`
	CollectionTarget *decimal.Decimal `json:"collection_target,omitempty"`
}

// BulkSaveTargetsRequest represents the request body for saving several monthly targets.
type BulkSaveTargetsRequest struct {
	Targets []BulkTargetItemRequest `json:"targets" binding:"required"`
}
