// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pulso-finanzas/backend/internal/application/usecase/metrics"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/dto"
	"github.com/pulso-finanzas/backend/internal/integration/entrypoint/middleware"
)

// MetricsController handles the composite period-metrics endpoint.
type MetricsController struct {
	getMetricsUseCase *metrics.GetMetricsUseCase
}

// NewMetricsController creates a new metrics controller instance.
func NewMetricsController(getMetricsUseCase *metrics.GetMetricsUseCase) *MetricsController {
	return &MetricsController{
		getMetricsUseCase: getMetricsUseCase,
	}
}

// Get handles GET /metrics?period=YYYY-MM requests.
func (c *MetricsController) Get(ctx *gin.Context) {
	workspaceID, ok := middleware.GetWorkspaceIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "No autenticado",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := metrics.GetMetricsInput{
		WorkspaceID: workspaceID,
		PeriodKey:   ctx.Query("period"),
	}

	output, err := c.getMetricsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMetricsError(ctx, err)
		return
	}

	// A nil output means the workspace does not exist yet; the frontend renders
	// its onboarding state from the JSON null.
	if output == nil {
		ctx.JSON(http.StatusOK, nil)
		return
	}

	ctx.JSON(http.StatusOK, output)
}

// handleMetricsError maps metrics errors to HTTP responses.
func (c *MetricsController) handleMetricsError(ctx *gin.Context, err error) {
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
		Error: "No se pudieron calcular las métricas",
		Code:  string(domainerror.ErrCodeMetricsInternalError),
	})
}
