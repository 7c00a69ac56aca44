package providers

import (
	"fitheat/internal/models"
	"fitheat/internal/structures"
	"fmt"
	"github.com/samber/lo"
	"slices"
)

type KindRouterInterface interface {
	Handle(kind models.LogKind, handler structures.JobHandler)
	Lookup(kind string) (models.LogKind, []structures.JobHandler, error)
	Kinds() []models.LogKind
}

type KindRouter struct {
	routes map[models.LogKind][]structures.JobHandler
}

func (kr *KindRouter) Handle(kind models.LogKind, handler structures.JobHandler) {
	kr.routes[kind] = append(kr.routes[kind], handler)
}

func (kr *KindRouter) Lookup(kind string) (models.LogKind, []structures.JobHandler, error) {
	k, err := models.ParseKind(kind)
	if err != nil {
		return "", nil, err
	}
	handlers, ok := kr.routes[k]
	if !ok || len(handlers) == 0 {
		return "", nil, fmt.Errorf("%w: %q is not enabled", models.ErrUnsupportedKind, kind)
	}
	return k, handlers, nil
}

func (kr *KindRouter) Kinds() []models.LogKind {
	kinds := lo.Keys(kr.routes)
	slices.Sort(kinds)
	return kinds
}

func NewKindRouter() KindRouterInterface {
	return &KindRouter{routes: make(map[models.LogKind][]structures.JobHandler)}
}
