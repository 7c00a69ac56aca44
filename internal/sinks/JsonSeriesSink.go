package sinks

import (
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/structures"
	"fmt"
	json "github.com/goccy/go-json"
	"path/filepath"
)

type seriesPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

type seriesDocument struct {
	Kind     models.LogKind `json:"kind"`
	Year     int            `json:"year"`
	MaxScore float64        `json:"maxScore"`
	Series   []seriesPoint  `json:"series"`
}

// JsonSeriesSink writes <dir>/<kind>-<year>.json.
type JsonSeriesSink struct {
	dir      string
	maxScore float64
	logger   providers.Logger
}

func NewJsonSeriesSink(conf *structures.Config, logger providers.Logger) *JsonSeriesSink {
	return &JsonSeriesSink{
		dir:      conf.Output.Dir,
		maxScore: conf.Score.MaxScore,
		logger:   logger,
	}
}

func (s *JsonSeriesSink) WriteSeries(kind models.LogKind, year int, series []models.DailyScore) error {
	doc := seriesDocument{
		Kind:     kind,
		Year:     year,
		MaxScore: s.maxScore,
		Series:   make([]seriesPoint, 0, len(series)),
	}
	for _, p := range series {
		doc.Series = append(doc.Series, seriesPoint{Date: models.DayKey(p.Date), Value: p.Value})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(s.dir, fmt.Sprintf("%s-%d.json", kind, year))
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing series %s: %w", path, err)
	}
	s.logger.Infof(providers.TypeSink, "Wrote %d points to %s", len(series), path)
	return nil
}
