package controllers

import (
	"context"
	"fitheat/internal/engine"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/sinks"
	"fitheat/internal/structures"
	"fmt"
	"time"
)

// HeatmapController turns a year of raw logs into the per-day score series
// and hands it to every configured sink.
type HeatmapController struct {
	scorer  *engine.Scorer
	loc     *time.Location
	sinks   sinks.SeriesSinks
	metrics providers.MetricsProviderInterface
	logger  providers.Logger
}

func NewHeatmapController(scorer *engine.Scorer, loc *time.Location, seriesSinks sinks.SeriesSinks, metrics providers.MetricsProviderInterface, logger providers.Logger) *HeatmapController {
	return &HeatmapController{
		scorer:  scorer,
		loc:     loc,
		sinks:   seriesSinks,
		metrics: metrics,
		logger:  logger,
	}
}

func (hc *HeatmapController) Name() string {
	return "heatmap"
}

func (hc *HeatmapController) Build(_ context.Context, req *structures.JobRequest) (structures.JobOutput, error) {
	ix := engine.NewDailyIndex(req.Kind, req.Records)
	series := engine.AssembleSeries(ix, hc.scorer, req.Year, hc.loc)
	hc.metrics.SetDaysScored(req.Kind.String(), len(series))
	hc.logger.Infof(providers.GetLogTypeByKind(req.Kind), "Scored %d raw logs into %d days for %d", len(req.Records), len(series), req.Year)

	return &seriesOutput{kind: req.Kind, year: req.Year, series: series, sinks: hc.sinks}, nil
}

type seriesOutput struct {
	kind   models.LogKind
	year   int
	series []models.DailyScore
	sinks  sinks.SeriesSinks
}

func (o *seriesOutput) Write() error {
	for _, sink := range o.sinks {
		if err := sink.WriteSeries(o.kind, o.year, o.series); err != nil {
			return fmt.Errorf("%s-%d: %w", o.kind, o.year, err)
		}
	}
	return nil
}
