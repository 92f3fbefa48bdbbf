package ports

import (
	"context"

	"github.com/stpnv0/EventTicketing/internal/domain"
)

type Reporter interface {
	Report(ctx context.Context, outcome domain.Outcome)
}
