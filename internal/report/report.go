// Package report implements the reporting boundary that receives one
// structured outcome per engine operation.
package report

import (
	"context"
	"sync"

	"github.com/stpnv0/EventTicketing/internal/domain"
	"github.com/stpnv0/EventTicketing/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// LogReporter writes outcomes to the structured log. Failures go out at warn
// level, successes at info.
type LogReporter struct {
	logger logger.Logger
}

func NewLogReporter(log logger.Logger) *LogReporter {
	return &LogReporter{logger: log}
}

func (r *LogReporter) Report(ctx context.Context, outcome domain.Outcome) {
	level := logger.InfoLevel
	if !outcome.Success() {
		level = logger.WarnLevel
	}

	r.logger.LogAttrs(ctx, level, "operation outcome",
		logger.String("code", string(outcome.Code)),
		logger.Any("params", outcome.Params),
	)
}

// Recorder keeps every outcome in memory in the order received.
type Recorder struct {
	mu       sync.Mutex
	outcomes []domain.Outcome
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Report(_ context.Context, outcome domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
}

func (r *Recorder) Outcomes() []domain.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]domain.Outcome, len(r.outcomes))
	copy(res, r.outcomes)
	return res
}

func (r *Recorder) Codes() []domain.OutcomeCode {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]domain.OutcomeCode, 0, len(r.outcomes))
	for _, o := range r.outcomes {
		res = append(res, o.Code)
	}
	return res
}

// Last returns the most recent outcome and false when nothing was reported.
func (r *Recorder) Last() (domain.Outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.outcomes) == 0 {
		return domain.Outcome{}, false
	}
	return r.outcomes[len(r.outcomes)-1], true
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = nil
}

// Fanout forwards each outcome to all reporters in order.
type Fanout []ports.Reporter

func (f Fanout) Report(ctx context.Context, outcome domain.Outcome) {
	for _, r := range f {
		r.Report(ctx, outcome)
	}
}
