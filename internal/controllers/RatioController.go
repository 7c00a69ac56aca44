package controllers

import (
	"context"
	"fitheat/internal/engine"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/sinks"
	"fitheat/internal/structures"
	"time"
)

// RatioController reports how many days of the year so far ended their
// main sleep before the threshold hour.
type RatioController struct {
	scorer   *engine.Scorer
	loc      *time.Location
	reporter sinks.RatioReporterInterface
	now      func() time.Time
	logger   providers.Logger
}

func NewRatioController(scorer *engine.Scorer, loc *time.Location, reporter sinks.RatioReporterInterface, logger providers.Logger) *RatioController {
	return &RatioController{
		scorer:   scorer,
		loc:      loc,
		reporter: reporter,
		now:      time.Now,
		logger:   logger,
	}
}

func (rc *RatioController) Name() string {
	return "ratio"
}

func (rc *RatioController) Build(_ context.Context, req *structures.JobRequest) (structures.JobOutput, error) {
	ix := engine.NewDailyIndex(req.Kind, req.Records)
	report := engine.EarlyRatio(ix, rc.scorer, req.Year, rc.now(), rc.loc)
	rc.logger.Infof(providers.GetLogTypeByKind(req.Kind), "Early days for %d: %s", req.Year, report)

	return &ratioOutput{kind: req.Kind, year: req.Year, report: report, reporter: rc.reporter}, nil
}

type ratioOutput struct {
	kind     models.LogKind
	year     int
	report   models.RatioReport
	reporter sinks.RatioReporterInterface
}

func (o *ratioOutput) Write() error {
	return o.reporter.Report(o.kind, o.year, o.report)
}
