package orders

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Gemy-star/reverse/internal/mailer"
	"github.com/Gemy-star/reverse/internal/shared/apperr"
)

type Service struct {
	repo     Repository
	mail     mailer.Service
	fromName string
	fromAddr string
	log      *slog.Logger
}

func NewService(repo Repository, mail mailer.Service, fromName, fromAddr string, log *slog.Logger) *Service {
	return &Service{repo: repo, mail: mail, fromName: fromName, fromAddr: fromAddr, log: log}
}

// UpdateStatus persists a status change and notifies the customer.
// The mail is best-effort: a send failure is logged, not returned,
// because the status change has already happened.
func (s *Service) UpdateStatus(ctx context.Context, orderNumber, status string) error {
	if !IsValidStatus(status) {
		return apperr.InvalidErr("Unknown order status.", map[string]string{"status": "unknown status"})
	}

	o, err := s.repo.ByNumber(ctx, orderNumber)
	if err == ErrNotFound {
		return apperr.NotFoundErr("Order not found.")
	}
	if err != nil {
		return apperr.Wrap(err)
	}
	if o.Status == status {
		return nil
	}

	if err := s.repo.UpdateStatus(ctx, o.ID, status); err != nil {
		return apperr.Wrap(err)
	}

	if s.mail != nil && o.Email != "" {
		e := mailer.Email{
			FromName: s.fromName,
			From:     s.fromAddr,
			To:       []string{o.Email},
			Subject:  fmt.Sprintf("Your order %s is now %s", o.OrderNumber, status),
			TextBody: fmt.Sprintf(
				"Hi %s,\n\nYour order %s has been updated from %s to %s.\n\nThank you for shopping with Reverse.\n",
				o.FullName, o.OrderNumber, o.Status, status),
		}
		if err := s.mail.Send(ctx, e); err != nil {
			s.log.LogAttrs(ctx, slog.LevelError, "order_status_mail_failed",
				slog.String("order_number", o.OrderNumber),
				slog.Any("err", err),
			)
		}
	}
	return nil
}
