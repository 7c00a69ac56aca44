package internal

import (
	"context"
	"fitheat/internal/engine"
	"fitheat/internal/providers"
	"fitheat/internal/services"
	"fitheat/internal/structures"
	"fmt"
)

type App struct {
	conf    *structures.Config
	router  providers.KindRouterInterface
	planner *engine.Planner
	tokens  services.TokenServiceInterface
	fetch   services.FetchServiceInterface
	metrics providers.MetricsProviderInterface
	logger  providers.Logger
}

func NewApp(conf *structures.Config, router providers.KindRouterInterface, planner *engine.Planner, tokens services.TokenServiceInterface, fetch services.FetchServiceInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) *App {
	return &App{
		conf:    conf,
		router:  router,
		planner: planner,
		tokens:  tokens,
		fetch:   fetch,
		metrics: metrics,
		logger:  logger,
	}
}

// Run executes every pipeline registered for kind over year. The raw logs are
// loaded once and shared by the pipelines. All pipelines are built before any
// of them writes, so a failure leaves no output behind.
func (a *App) Run(ctx context.Context, kindName string, year int) error {
	kind, handlers, err := a.router.Lookup(kindName)
	if err != nil {
		return err
	}
	ranges, err := a.planner.PlanRanges(year)
	if err != nil {
		return err
	}

	req := &structures.JobRequest{Kind: kind, Year: year, Ranges: ranges}
	if !a.conf.Offline {
		req.Credential, err = a.tokens.ObtainValidCredential(ctx)
		if err != nil {
			return err
		}
	}

	a.logger.Infof(providers.GetLogTypeByKind(kind), "Starting %s %d over %d ranges", kind, year, len(ranges))

	req.Records, err = a.fetch.Load(ctx, req)
	if err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}

	outputs := make([]structures.JobOutput, 0, len(handlers))
	for _, h := range handlers {
		out, err := h.Build(ctx, req)
		if err != nil {
			return fmt.Errorf("%s %s: %w", kind, h.Name(), err)
		}
		outputs = append(outputs, out)
	}

	for i, out := range outputs {
		if err := out.Write(); err != nil {
			return fmt.Errorf("%s %s: %w", kind, handlers[i].Name(), err)
		}
	}

	if err := a.metrics.Flush(); err != nil {
		a.logger.Warnf(providers.TypeApp, "Unable to write metrics: %s", err)
	}
	a.logger.Infof(providers.TypeApp, "%s %d done", kind, year)
	return nil
}
