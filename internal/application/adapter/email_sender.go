// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// QueueStreakMilestoneInput represents the input for queueing a streak milestone email.
type QueueStreakMilestoneInput struct {
	OwnerEmail    string
	OwnerName     string
	WorkspaceName string
	Badge         string
	WeekCount     int
}

// QueueReconciliationAlertInput represents the input for queueing a reconciliation alert email.
type QueueReconciliationAlertInput struct {
	OwnerEmail    string
	OwnerName     string
	WorkspaceName string
	Difference    string
	Tolerance     string
}

// NotificationService defines the interface for queueing engine notifications.
type NotificationService interface {
	// QueueStreakMilestoneEmail queues a congratulation email for a new badge tier.
	QueueStreakMilestoneEmail(ctx context.Context, input QueueStreakMilestoneInput) error

	// QueueReconciliationAlertEmail queues a warning email for a material difference.
	QueueReconciliationAlertEmail(ctx context.Context, input QueueReconciliationAlertInput) error
}
