// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulso-finanzas/backend/internal/application/usecase/insight"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/dto"
	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles the AI narrative endpoint.
type InsightController struct {
	generateUseCase *insight.GenerateInsightUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(generateUseCase *insight.GenerateInsightUseCase) *InsightController {
	return &InsightController{
		generateUseCase: generateUseCase,
	}
}

// Get handles GET /insights?period=YYYY-MM requests.
func (c *InsightController) Get(ctx *gin.Context) {
	workspaceID, ok := middleware.GetWorkspaceIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "No autenticado",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := insight.GenerateInsightInput{
		WorkspaceID: workspaceID,
		PeriodKey:   ctx.Query("period"),
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleInsightError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleInsightError maps insight errors to HTTP responses.
func (c *InsightController) handleInsightError(ctx *gin.Context, err error) {
	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		statusCode := http.StatusInternalServerError
		if insightErr.Code == domainerror.ErrCodeInsightUnavailable {
			statusCode = http.StatusServiceUnavailable
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	var metricsErr *domainerror.MetricsError
	if errors.As(err, &metricsErr) {
		statusCode := http.StatusInternalServerError
		switch metricsErr.Code {
		case domainerror.ErrCodeInvalidPeriodKey:
			statusCode = http.StatusBadRequest
		case domainerror.ErrCodeWorkspaceNotFound:
			statusCode = http.StatusNotFound
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: metricsErr.Message,
			Code:  string(metricsErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "No se pudo generar el resumen",
		Code:  string(domainerror.ErrCodeInsightGenerationFailed),
	})
}
