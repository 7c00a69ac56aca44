package internal

import (
	"fitheat/internal/controllers"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/structures"
	"fmt"
)

// InitKinds registers the pipelines of every enabled kind. Sleep feeds both
// the heatmap and the early ratio; activity only has a heatmap.
func InitKinds(conf *structures.Config, heatmap *controllers.HeatmapController, ratio *controllers.RatioController) (providers.KindRouterInterface, error) {
	router := providers.NewKindRouter()

	for _, name := range conf.Kinds {
		kind, err := models.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: kinds: %v", models.ErrConfigMissing, err)
		}
		switch kind {
		case models.KindSleep:
			router.Handle(kind, heatmap)
			router.Handle(kind, ratio)
		case models.KindActivity:
			router.Handle(kind, heatmap)
		}
	}
	return router, nil
}
