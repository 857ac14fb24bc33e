package orders

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/Gemy-star/reverse/internal/mailer"
	"github.com/Gemy-star/reverse/internal/shared/apperr"
)

type stubRepo struct {
	Repository
	byNumber map[string]Order
	updated  map[string]string
}

func (s *stubRepo) ByNumber(_ context.Context, number string) (Order, error) {
	o, ok := s.byNumber[number]
	if !ok {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, orderID, status string) error {
	if s.updated == nil {
		s.updated = map[string]string{}
	}
	s.updated[orderID] = status
	return nil
}

func newTestService(repo Repository, mock *mailer.Mock) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(repo, mock, "Reverse", "no-reply@reverse-eg.com", log)
}

func TestUpdateStatusPersistsAndMails(t *testing.T) {
	repo := &stubRepo{byNumber: map[string]Order{
		"ABC123": {ID: "o1", OrderNumber: "ABC123", Status: StatusPending, Email: "jo@example.com", FullName: "Jo"},
	}}
	mock := &mailer.Mock{}
	svc := newTestService(repo, mock)

	if err := svc.UpdateStatus(context.Background(), "ABC123", StatusShipped); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if repo.updated["o1"] != StatusShipped {
		t.Errorf("status not persisted: %v", repo.updated)
	}
	if len(mock.Sent) != 1 {
		t.Fatalf("sent %d mails, want 1", len(mock.Sent))
	}
	sent := mock.Sent[0]
	if sent.To[0] != "jo@example.com" {
		t.Errorf("mail to %v", sent.To)
	}
	if !strings.Contains(sent.Subject, "ABC123") || !strings.Contains(sent.Subject, StatusShipped) {
		t.Errorf("subject = %q", sent.Subject)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(&stubRepo{}, &mailer.Mock{})
	err := svc.UpdateStatus(context.Background(), "ABC123", "teleported")
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.Invalid {
		t.Fatalf("err = %v, want invalid", err)
	}
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	svc := newTestService(&stubRepo{byNumber: map[string]Order{}}, &mailer.Mock{})
	err := svc.UpdateStatus(context.Background(), "NOPE", StatusShipped)
	ae, ok := apperr.As(err)
	if !ok || ae.Kind != apperr.NotFound {
		t.Fatalf("err = %v, want not_found", err)
	}
}

func TestUpdateStatusNoOpForSameStatus(t *testing.T) {
	repo := &stubRepo{byNumber: map[string]Order{
		"ABC123": {ID: "o1", OrderNumber: "ABC123", Status: StatusShipped, Email: "jo@example.com"},
	}}
	mock := &mailer.Mock{}
	svc := newTestService(repo, mock)

	if err := svc.UpdateStatus(context.Background(), "ABC123", StatusShipped); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if len(repo.updated) != 0 {
		t.Errorf("no-op still persisted: %v", repo.updated)
	}
	if len(mock.Sent) != 0 {
		t.Errorf("no-op still mailed: %d", len(mock.Sent))
	}
}

func TestUpdateStatusMailFailureIsNotReturned(t *testing.T) {
	repo := &stubRepo{byNumber: map[string]Order{
		"ABC123": {ID: "o1", OrderNumber: "ABC123", Status: StatusPending, Email: "jo@example.com"},
	}}
	mock := &mailer.Mock{Err: io.ErrClosedPipe}
	svc := newTestService(repo, mock)

	if err := svc.UpdateStatus(context.Background(), "ABC123", StatusShipped); err != nil {
		t.Fatalf("mail failure surfaced: %v", err)
	}
	if repo.updated["o1"] != StatusShipped {
		t.Error("status change lost on mail failure")
	}
}
