// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/pulso-finanzas/backend/internal/application/adapter"
	"github.com/pulso-finanzas/backend/internal/domain/entity"
	domainerror "github.com/pulso-finanzas/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueStreakMilestoneEmail queues a congratulation email for a new badge tier.
func (s *Service) QueueStreakMilestoneEmail(ctx context.Context, input adapter.QueueStreakMilestoneInput) error {
	subject := fmt.Sprintf("%s ¡%d semanas conciliando tu saldo! - Pulso", input.Badge, input.WeekCount)

	templateData := map[string]interface{}{
		"owner_name":     input.OwnerName,
		"workspace_name": input.WorkspaceName,
		"badge":          input.Badge,
		"week_count":     input.WeekCount,
	}

	job := entity.NewEmailJob(
		entity.TemplateStreakMilestone,
		input.OwnerEmail,
		input.OwnerName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue streak milestone email",
			err,
		)
	}

	return nil
}

// QueueReconciliationAlertEmail queues a warning email for a material difference.
func (s *Service) QueueReconciliationAlertEmail(ctx context.Context, input adapter.QueueReconciliationAlertInput) error {
	subject := "Tu saldo bancario no cuadra con tus registros - Pulso"

	templateData := map[string]interface{}{
		"owner_name":     input.OwnerName,
		"workspace_name": input.WorkspaceName,
		"difference":     input.Difference,
		"tolerance":      input.Tolerance,
	}

	job := entity.NewEmailJob(
		entity.TemplateReconciliationAlert,
		input.OwnerEmail,
		input.OwnerName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue reconciliation alert email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.NotificationService.
var _ adapter.NotificationService = (*Service)(nil)
