// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/pulso-finanzas/backend/internal/domain/entity"
	"github.com/pulso-finanzas/backend/internal/integration/email/templates"
)

type fakeQueue struct {
	jobs []*entity.EmailJob
}

func (f *fakeQueue) Create(_ context.Context, job *entity.EmailJob) error {
	f.jobs = append(f.jobs, job)
	return nil
}

func (f *fakeQueue) GetPendingJobs(_ context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range f.jobs {
		if job.IsReadyToProcess() {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (f *fakeQueue) Update(_ context.Context, job *entity.EmailJob) error {
	for i, existing := range f.jobs {
		if existing.ID == job.ID {
			f.jobs[i] = job
			return nil
		}
	}
	return errors.New("job not found")
}

func (f *fakeQueue) GetByRecipient(_ context.Context, email string) ([]*entity.EmailJob, error) {
	var out []*entity.EmailJob
	for _, job := range f.jobs {
		if job.RecipientEmail == email {
			out = append(out, job)
		}
	}
	return out, nil
}

func newTestWorker(t *testing.T, queue *fakeQueue, sender *MockEmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer() error = %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func TestWorkerProcessBatch(t *testing.T) {
	t.Run("sends a streak milestone email and marks it sent", func(t *testing.T) {
		queue := &fakeQueue{}
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(
			entity.TemplateStreakMilestone,
			"dueno@example.com",
			"Maria",
			"Nueva insignia",
			map[string]interface{}{
				"owner_name":     "Maria",
				"workspace_name": "Estudio Luna",
				"badge":          string(entity.StreakBadgeBronze),
				"week_count":     float64(4),
			},
		)
		_ = queue.Create(context.Background(), job)

		worker.processBatch(context.Background())

		if job.Status != entity.EmailStatusSent {
			t.Fatalf("job status = %q, want %q (last error: %s)", job.Status, entity.EmailStatusSent, job.LastError)
		}
		if len(sender.SentEmails) != 1 {
			t.Fatalf("sent %d emails, want 1", len(sender.SentEmails))
		}
		sent := sender.SentEmails[0]
		if sent.To != "dueno@example.com" {
			t.Errorf("To = %q, want dueno@example.com", sent.To)
		}
		if !strings.Contains(sent.HTML, "Estudio Luna") {
			t.Errorf("rendered HTML does not mention the workspace name")
		}
	})

	t.Run("renders the reconciliation alert with amounts", func(t *testing.T) {
		queue := &fakeQueue{}
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(
			entity.TemplateReconciliationAlert,
			"dueno@example.com",
			"Maria",
			"Diferencia detectada",
			map[string]interface{}{
				"owner_name":     "Maria",
				"workspace_name": "Estudio Luna",
				"difference":     "75000.00",
				"tolerance":      "50000.00",
			},
		)
		_ = queue.Create(context.Background(), job)

		worker.processBatch(context.Background())

		if job.Status != entity.EmailStatusSent {
			t.Fatalf("job status = %q, want %q", job.Status, entity.EmailStatusSent)
		}
		if !strings.Contains(sender.SentEmails[0].Text, "75000.00") {
			t.Errorf("rendered text does not mention the difference")
		}
	})

	t.Run("temporary send failure leaves the job pending for retry", func(t *testing.T) {
		queue := &fakeQueue{}
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("rate limited"), false)
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(
			entity.TemplateReconciliationAlert,
			"dueno@example.com",
			"Maria",
			"Diferencia detectada",
			map[string]interface{}{"owner_name": "Maria"},
		)
		_ = queue.Create(context.Background(), job)

		worker.processBatch(context.Background())

		if job.Status != entity.EmailStatusPending {
			t.Fatalf("job status = %q, want %q", job.Status, entity.EmailStatusPending)
		}
		if job.Attempts != 1 {
			t.Errorf("attempts = %d, want 1", job.Attempts)
		}
	})

	t.Run("permanent send failure fails the job on the first attempt", func(t *testing.T) {
		queue := &fakeQueue{}
		sender := NewMockEmailSender()
		sender.SetFailure(errors.New("invalid recipient"), true)
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(
			entity.TemplateStreakMilestone,
			"bad@example.com",
			"Maria",
			"Nueva insignia",
			map[string]interface{}{"owner_name": "Maria"},
		)
		_ = queue.Create(context.Background(), job)

		worker.processBatch(context.Background())

		if job.Status != entity.EmailStatusFailed {
			t.Fatalf("job status = %q, want %q", job.Status, entity.EmailStatusFailed)
		}
	})

	t.Run("unknown template type fails permanently", func(t *testing.T) {
		queue := &fakeQueue{}
		sender := NewMockEmailSender()
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(
			entity.EmailTemplateType("unknown"),
			"dueno@example.com",
			"Maria",
			"???",
			map[string]interface{}{},
		)
		_ = queue.Create(context.Background(), job)

		worker.processBatch(context.Background())

		if job.Status != entity.EmailStatusFailed {
			t.Fatalf("job status = %q, want %q", job.Status, entity.EmailStatusFailed)
		}
		if len(sender.SentEmails) != 0 {
			t.Errorf("sent %d emails, want 0", len(sender.SentEmails))
		}
	})
}
