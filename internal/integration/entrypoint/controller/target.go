// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulso-finanzas/backend/internal/application/usecase/target"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/dto"
	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/middleware"
)

// TargetController handles monthly target endpoints.
type TargetController struct {
	saveUseCase     *target.SaveTargetUseCase
	bulkSaveUseCase *target.BulkSaveTargetsUseCase
	getUseCase      *target.GetTargetUseCase
}

// NewTargetController creates a new target controller instance.
func NewTargetController(
	saveUseCase *target.SaveTargetUseCase,
	bulkSaveUseCase *target.BulkSaveTargetsUseCase,
	getUseCase *target.GetTargetUseCase,
) *TargetController {
	return &TargetController{
		saveUseCase:     saveUseCase,
		bulkSaveUseCase: bulkSaveUseCase,
		getUseCase:      getUseCase,
	}
}

// Save handles PUT /targets/:period requests.
func (c *TargetController) Save(ctx *gin.Context) {
	workspaceID, ok := middleware.GetWorkspaceIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "No autenticado",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	period, err := entity.ParsePeriodKey(ctx.Param("period"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "El periodo debe tener formato YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidPeriodKey),
		})
		return
	}

	var req dto.SaveTargetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Cuerpo de solicitud inválido: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSalesTarget),
		})
		return
	}

	input := target.SaveTargetInput{
		WorkspaceID:      workspaceID,
		Period:           period,
		SalesTarget:      req.SalesTarget,
		CollectionTarget: req.CollectionTarget,
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTargetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// BulkSave handles POST /targets/bulk requests.
func (c *TargetController) BulkSave(ctx *gin.Context) {
	workspaceID, ok := middleware.GetWorkspaceIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "No autenticado",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.BulkSaveTargetsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Cuerpo de solicitud inválido: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidSalesTarget),
		})
		return
	}

	items := make([]target.BulkTargetItem, 0, len(req.Targets))
	for _, item := range req.Targets {
		period, err := entity.ParsePeriodKey(item.Period)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "El periodo debe tener formato YYYY-MM: " + item.Period,
				Code:  string(domainerror.ErrCodeInvalidPeriodKey),
			})
			return
		}
		items = append(items, target.BulkTargetItem{
			Period:           period,
			SalesTarget:      item.SalesTarget,
			CollectionTarget: item.CollectionTarget,
		})
	}

	input := target.BulkSaveTargetsInput{
		WorkspaceID: workspaceID,
		Items:       items,
	}

	output, err := c.bulkSaveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTargetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// Get handles GET /targets/:period requests.
func (c *TargetController) Get(ctx *gin.Context) {
	workspaceID, ok := middleware.GetWorkspaceIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "No autenticado",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	period, err := entity.ParsePeriodKey(ctx.Param("period"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "El periodo debe tener formato YYYY-MM",
			Code:  string(domainerror.ErrCodeInvalidPeriodKey),
		})
		return
	}

	input := target.GetTargetInput{
		WorkspaceID: workspaceID,
		Period:      period,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTargetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleTargetError maps target errors to HTTP responses.
func (c *TargetController) handleTargetError(ctx *gin.Context, err error) {
	var targetErr *domainerror.TargetError
	if errors.As(err, &targetErr) {
		statusCode := http.StatusInternalServerError
		switch targetErr.Code {
		case domainerror.ErrCodeInvalidSalesTarget,
			domainerror.ErrCodeInvalidCollectionTarget,
			domainerror.ErrCodeTooManyTargets:
			statusCode = http.StatusBadRequest
		case domainerror.ErrCodeTargetNotFound:
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: targetErr.Message,
			Code:  string(targetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "No se pudo guardar la meta",
		Code:  string(domainerror.ErrCodeTargetInternalError),
	})
}
