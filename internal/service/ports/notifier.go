package ports

import (
	"context"

	"github.com/stpnv0/EventTicketing/internal/domain"
)

type BookingNotifier interface {
	NotifyEventCancelled(ctx context.Context, user *domain.User, event *domain.Event, message string)
}
