package service

import (
	"context"
	"time"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stpnv0/EventTicketing/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// outcomes sends operation results to the reporting boundary.
type outcomes struct {
	reporter ports.Reporter
	logger   logger.Logger
	now      func() time.Time
}

func (o *outcomes) emit(ctx context.Context, code domain.OutcomeCode, params map[string]any) {
	o.reporter.Report(ctx, domain.Outcome{Code: code, Params: params, At: o.now().UTC()})
}

// fail reports err under its stable code and returns it unchanged. Errors
// without a code (storage, lookups of collaborators) are logged instead.
func (o *outcomes) fail(ctx context.Context, op domain.Operation, err error, params map[string]any) error {
	code, ok := domain.CodeFor(op, err)
	if !ok {
		o.logger.Error("operation failed",
			logger.String("operation", string(op)),
			logger.String("error", err.Error()),
		)
		return err
	}

	o.reporter.Report(ctx, domain.Outcome{Code: code, Params: params, At: o.now().UTC()})
	return err
}
