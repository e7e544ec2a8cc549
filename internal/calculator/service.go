// Package calculator runs one input snapshot through validation, the
// derivation engine and the report builder.
package calculator

import (
	"context"
	"log/slog"
	"time"

	"github.com/AngelCh415/ROI_GO/internal/inputs"
	"github.com/AngelCh415/ROI_GO/internal/metrics"
	"github.com/AngelCh415/ROI_GO/internal/models"
	"github.com/AngelCh415/ROI_GO/internal/report"
	"github.com/AngelCh415/ROI_GO/internal/roi"
	"github.com/AngelCh415/ROI_GO/internal/utils"
)

type Evaluation struct {
	Inputs  models.Inputs  `json:"inputs"`
	Results models.Results `json:"results"`
	Report  report.Report  `json:"report"`
}

type Service struct {
	log      *slog.Logger
	val      *inputs.Validator
	rec      *metrics.Recorder
	defaults models.Inputs
}

// NewService builds a Service. rec may be nil when metrics are not exported.
func NewService(log *slog.Logger, rec *metrics.Recorder, defaults models.Inputs) *Service {
	return &Service{log: log, val: inputs.NewValidator(), rec: rec, defaults: defaults}
}

// Defaults is the snapshot request overlays start from.
func (s *Service) Defaults() models.Inputs { return s.defaults }

// Evaluate validates in and derives results plus the rendered report.
// The returned error is an *inputs.ValidationError when a field is out of range.
func (s *Service) Evaluate(ctx context.Context, in models.Inputs) (Evaluation, error) {
	if err := s.val.Validate(in); err != nil {
		if s.rec != nil {
			s.rec.Rejected()
		}
		s.log.Debug("inputs rejected", slog.String("rid", utils.RID(ctx)), slog.String("err", err.Error()))
		return Evaluation{}, err
	}

	start := time.Now()
	res := roi.Compute(in)
	rep := report.Build(in, res)
	took := time.Since(start)

	if s.rec != nil {
		s.rec.Observe(res, took)
	}
	s.log.Debug("roi computed",
		slog.String("rid", utils.RID(ctx)),
		slog.Float64("monthly_gain", res.TotalMonthlyGain),
		slog.String("payback", rep.Headline.Payback),
		slog.Duration("took", took))

	return Evaluation{Inputs: in, Results: res, Report: rep}, nil
}
