package notification

import (
	"context"
	"fmt"

	guestRepo "resortly/database/repository/guest"
	"resortly/models"
	"resortly/utils"

	"go.uber.org/zap"
)

// Sender is the external delivery collaborator (email/SMS gateway). Actual
// transport lives outside this service; it only receives fully composed
// messages for guests whose preferences allow them.
type Sender interface {
	Send(ctx context.Context, guest *models.Guest, subject, body string) error
}

// NotificationService composes guest-facing notifications, honoring each
// guest's stored preferences.
type NotificationService interface {
	SendStayReminder(ctx context.Context, res *models.Reservation) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Guests guestRepo.GuestRepository
	Sender Sender
}

// SendStayReminder notifies a guest about an upcoming stay or session. It is
// a no-op for guests who turned stay reminders off.
func (s *DefaultNotificationService) SendStayReminder(ctx context.Context, res *models.Reservation) error {
	logger := utils.GetLogger()

	guest, err := s.Guests.GetByID(ctx, res.GuestID)
	if err != nil {
		return fmt.Errorf("stay reminder: could not load guest %s: %w", res.GuestID, err)
	}
	if !guest.Prefs.StayReminders {
		logger.Debug("stay reminder skipped by guest preference", zap.String("guestID", guest.ID))
		return nil
	}

	var subject, body string
	switch res.ResourceType {
	case models.ResourceExclusive:
		subject = "Your chalet stay starts soon"
		body = fmt.Sprintf("Hi %s, your stay begins on %s. Check-in opens at 15:00.", guest.Name, res.CheckIn)
	case models.ResourceShared:
		subject = "Your session is coming up"
		body = fmt.Sprintf("Hi %s, your booking for %d on %s is confirmed.", guest.Name, res.PartySize, res.SessionDate)
	}

	if err := s.Sender.Send(ctx, guest, subject, body); err != nil {
		return fmt.Errorf("stay reminder: delivery failed for guest %s: %w", guest.ID, err)
	}
	logger.Info("stay reminder sent",
		zap.String("guestID", guest.ID), zap.String("reservationID", res.ID))
	return nil
}

// LogSender is the default Sender used when no gateway is configured; it
// records the message instead of delivering it.
type LogSender struct{}

func (LogSender) Send(_ context.Context, guest *models.Guest, subject, body string) error {
	utils.GetLogger().Info("notification (log only)",
		zap.String("guestID", guest.ID), zap.String("subject", subject), zap.String("body", body))
	return nil
}
