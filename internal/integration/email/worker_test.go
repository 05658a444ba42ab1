package email

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/household-budget/backend/internal/domain/entity"
	"github.com/household-budget/backend/internal/integration/email/templates"
)

type fakeQueue struct {
	jobs         map[uuid.UUID]*entity.EmailJob
	cleanupCalls []int
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (q *fakeQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	var pending []*entity.EmailJob
	for _, job := range q.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(time.Now().UTC()) {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (q *fakeQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	q.jobs[job.ID] = job
	return nil
}

func (q *fakeQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	return q.jobs[id], nil
}

func (q *fakeQueue) ExistsPendingForReference(ctx context.Context, reference string) (bool, error) {
	return false, nil
}

func (q *fakeQueue) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	q.cleanupCalls = append(q.cleanupCalls, olderThanDays)
	var deleted int64
	cutoff := time.Now().UTC().AddDate(0, 0, -olderThanDays)
	for id, job := range q.jobs {
		if job.Status == entity.EmailStatusSent && job.ProcessedAt != nil && job.ProcessedAt.Before(cutoff) {
			delete(q.jobs, id)
			deleted++
		}
	}
	return deleted, nil
}

func newTestWorker(t *testing.T, queue *fakeQueue, sender *MockEmailSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to create renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, DefaultWorkerConfig())
}

func reminderJob() *entity.EmailJob {
	return entity.NewEmailJob(
		entity.TemplateDueReminder,
		[]string{"gabriel@example.com", "paloma@example.com"},
		"Conta a vencer: Aluguel",
		map[string]interface{}{
			"reference":   "due_reminder:test:06-2024",
			"description": "Aluguel",
			"amount":      "1500.00",
			"dueDate":     "05/06/2024",
			"daysLeft":    3,
			"profile":     "Gabriel",
		},
	)
}

func TestWorker_SendsDueReminder(t *testing.T) {
	queue := newFakeQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	job := reminderJob()
	if err := queue.Create(context.Background(), job); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	worker.ProcessNow(context.Background())

	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected 1 sent email, got %d", len(sender.SentEmails))
	}

	sent := sender.SentEmails[0]
	if len(sent.To) != 2 {
		t.Errorf("expected 2 recipients, got %d", len(sent.To))
	}
	if !strings.Contains(sent.HTML, "Aluguel") || !strings.Contains(sent.HTML, "1500.00") {
		t.Error("HTML body missing expense details")
	}
	if !strings.Contains(sent.Text, "vence em 3 dias") {
		t.Errorf("text body missing days left phrasing: %q", sent.Text)
	}

	stored := queue.jobs[job.ID]
	if stored.Status != entity.EmailStatusSent {
		t.Errorf("expected status sent, got %s", stored.Status)
	}
	if stored.ProviderID == "" {
		t.Error("expected provider ID to be recorded")
	}
}

func TestWorker_TemporaryFailureSchedulesRetry(t *testing.T) {
	queue := newFakeQueue()
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("rate limited: 429"), false)
	worker := newTestWorker(t, queue, sender)

	job := reminderJob()
	if err := queue.Create(context.Background(), job); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	worker.ProcessNow(context.Background())

	stored := queue.jobs[job.ID]
	if stored.Status != entity.EmailStatusPending {
		t.Fatalf("expected status pending for retry, got %s", stored.Status)
	}
	if stored.Attempts != 1 {
		t.Errorf("expected 1 attempt, got %d", stored.Attempts)
	}

	sender.ClearFailure()
	// Backoff pushed the retry into the future, pull it back for the sweep
	stored.ScheduledAt = time.Now().UTC().Add(-time.Second)
	worker.ProcessNow(context.Background())

	if queue.jobs[job.ID].Status != entity.EmailStatusSent {
		t.Errorf("expected retry to succeed, got status %s", queue.jobs[job.ID].Status)
	}
}

func TestWorker_PermanentFailureStopsRetrying(t *testing.T) {
	queue := newFakeQueue()
	sender := NewMockEmailSender()
	sender.SetFailure(errors.New("422 validation error"), true)
	worker := newTestWorker(t, queue, sender)

	job := reminderJob()
	if err := queue.Create(context.Background(), job); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	worker.ProcessNow(context.Background())

	stored := queue.jobs[job.ID]
	if stored.Status != entity.EmailStatusFailed {
		t.Fatalf("expected status failed, got %s", stored.Status)
	}
	if stored.LastError == "" {
		t.Error("expected last error to be recorded")
	}

	sender.ClearFailure()
	worker.ProcessNow(context.Background())
	if len(sender.SentEmails) != 0 {
		t.Error("failed job must not be retried")
	}
}

func TestWorker_CleanupPrunesOldSentJobs(t *testing.T) {
	queue := newFakeQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	old := reminderJob()
	old.MarkSent("provider-1")
	past := time.Now().UTC().AddDate(0, 0, -45)
	old.ProcessedAt = &past
	if err := queue.Create(context.Background(), old); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	recent := reminderJob()
	recent.MarkSent("provider-2")
	if err := queue.Create(context.Background(), recent); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	worker.cleanupSentJobs(context.Background())

	if len(queue.cleanupCalls) != 1 || queue.cleanupCalls[0] != 30 {
		t.Fatalf("expected one cleanup call with 30 days, got %v", queue.cleanupCalls)
	}
	if _, ok := queue.jobs[old.ID]; ok {
		t.Error("expected job past retention to be pruned")
	}
	if _, ok := queue.jobs[recent.ID]; !ok {
		t.Error("recently sent job must survive cleanup")
	}

	// Ran within the last day, so nothing fires again
	worker.cleanupSentJobs(context.Background())
	if len(queue.cleanupCalls) != 1 {
		t.Errorf("expected cleanup to be rate limited, got %d calls", len(queue.cleanupCalls))
	}
}

func TestWorker_UnknownTemplateFailsPermanently(t *testing.T) {
	queue := newFakeQueue()
	sender := NewMockEmailSender()
	worker := newTestWorker(t, queue, sender)

	job := entity.NewEmailJob("nonexistent", []string{"gabriel@example.com"}, "?", nil)
	if err := queue.Create(context.Background(), job); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	worker.ProcessNow(context.Background())

	if queue.jobs[job.ID].Status != entity.EmailStatusFailed {
		t.Errorf("expected status failed, got %s", queue.jobs[job.ID].Status)
	}
	if len(sender.SentEmails) != 0 {
		t.Error("nothing should be sent for an unknown template")
	}
}
