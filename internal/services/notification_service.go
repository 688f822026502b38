package services

import (
	"context"
	"fmt"

	"servicehub_backend/internal/email"
	"servicehub_backend/internal/logger"
	"servicehub_backend/internal/models"
)

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, id string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type notificationUserLookup interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// NotificationService delivers fire-and-forget notifications: a persisted
// row plus a best-effort email. Callers never block on or inspect the
// outcome; failures are logged and swallowed.
type NotificationService struct {
	store  NotificationStore
	users  notificationUserLookup
	emails email.Provider
}

func NewNotificationService(store NotificationStore, users notificationUserLookup, emails email.Provider) *NotificationService {
	return &NotificationService{store: store, users: users, emails: emails}
}

// Notify records a notification for the user. It never returns an error.
func (s *NotificationService) Notify(ctx context.Context, userID, title, description, variant string) {
	n := &models.Notification{
		UserID:      userID,
		Title:       title,
		Description: description,
		Variant:     variant,
	}
	if err := s.store.Create(ctx, n); err != nil {
		logger.CtxWithError(ctx, "failed to persist notification", err, "user_id", userID, "title", title)
		return
	}

	go s.sendEmail(userID, title, description)
}

func (s *NotificationService) sendEmail(userID, title, description string) {
	if s.emails == nil {
		return
	}
	user, err := s.users.FindByID(context.Background(), userID)
	if err != nil {
		logger.WithError(err).Warn("notification email skipped: user lookup failed", "user_id", userID)
		return
	}
	body := fmt.Sprintf("<p>%s</p>", description)
	if err := s.emails.Send(user.Email, title, body); err != nil {
		logger.WithError(err).Warn("notification email failed", "user_id", userID)
	}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	return s.store.ListByUser(ctx, userID, limit)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) error {
	return s.store.MarkRead(ctx, userID, id)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.store.UnreadCount(ctx, userID)
}

// Factory helpers for the notification types the panels emit.

func (s *NotificationService) NotifyJobCreated(ctx context.Context, customerID, title string) {
	s.Notify(ctx, customerID, "Job posted", fmt.Sprintf("Your job %q is now open for bids.", title), "default")
}

func (s *NotificationService) NotifyBidReceived(ctx context.Context, customerID, jobTitle string) {
	s.Notify(ctx, customerID, "New bid", fmt.Sprintf("A vendor placed a bid on %q.", jobTitle), "default")
}

func (s *NotificationService) NotifyBidAccepted(ctx context.Context, vendorID, jobTitle string) {
	s.Notify(ctx, vendorID, "Bid accepted", fmt.Sprintf("Your bid on %q was accepted.", jobTitle), "default")
}

func (s *NotificationService) NotifyVendorStatus(ctx context.Context, vendorID string, status models.VendorStatus) {
	variant := "default"
	if status == models.VendorStatusRejected || status == models.VendorStatusSuspended {
		variant = "destructive"
	}
	s.Notify(ctx, vendorID, "Account status changed", fmt.Sprintf("Your vendor account is now %s.", status), variant)
}

func (s *NotificationService) NotifyPaymentStatus(ctx context.Context, userID string, status models.PaymentStatus) {
	variant := "default"
	if status == models.PaymentStatusRefunded || status == models.PaymentStatusDisputed {
		variant = "destructive"
	}
	s.Notify(ctx, userID, "Payment updated", fmt.Sprintf("A payment on one of your jobs is now %s.", status), variant)
}
