// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulso-finanzas/backend/internal/application/usecase/balance"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/dto"
	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/middleware"
)

// BalanceController handles balance snapshot endpoints.
type BalanceController struct {
	recordUseCase *balance.RecordBalanceUseCase
	listUseCase   *balance.ListBalancesUseCase
}

// NewBalanceController creates a new balance controller instance.
func NewBalanceController(
	recordUseCase *balance.RecordBalanceUseCase,
	listUseCase *balance.ListBalancesUseCase,
) *BalanceController {
	return &BalanceController{
		recordUseCase: recordUseCase,
		listUseCase:   listUseCase,
	}
}

// Record handles POST /balances requests.
func (c *BalanceController) Record(ctx *gin.Context) {
	workspaceID, ok := middleware.GetWorkspaceIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "No autenticado",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.RecordBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Cuerpo de solicitud inválido: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidBalanceAmount),
		})
		return
	}

	input := balance.RecordBalanceInput{
		WorkspaceID: workspaceID,
		Amount:      req.Amount,
		Note:        req.Note,
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, output)
}

// List handles GET /balances requests.
func (c *BalanceController) List(ctx *gin.Context) {
	workspaceID, ok := middleware.GetWorkspaceIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "No autenticado",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := balance.ListBalancesInput{
		WorkspaceID: workspaceID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBalanceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleBalanceError maps balance errors to HTTP responses.
func (c *BalanceController) handleBalanceError(ctx *gin.Context, err error) {
	var balanceErr *domainerror.BalanceError
	if errors.As(err, &balanceErr) {
		statusCode := http.StatusInternalServerError
		switch balanceErr.Code {
		case domainerror.ErrCodeInvalidBalanceAmount:
			statusCode = http.StatusBadRequest
		case domainerror.ErrCodeSnapshotNotFound, domainerror.ErrCodeStreakNotFound:
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: balanceErr.Message,
			Code:  string(balanceErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "No se pudo procesar el saldo",
		Code:  string(domainerror.ErrCodeBalanceInternalError),
	})
}
