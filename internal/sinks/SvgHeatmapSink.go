package sinks

import (
	"bytes"
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fitheat/internal/structures"
	"fmt"
	"path/filepath"
	"time"
)

const (
	cellSize   = 11
	cellStep   = 13
	leftMargin = 32
	topMargin  = 22
)

// Five shades from "no data" to full score.
var palette = [...]string{"#ebedf0", "#c6e48b", "#7bc96f", "#239a3b", "#196127"}

var labeledWeekdays = []time.Weekday{time.Monday, time.Wednesday, time.Friday}

// SvgHeatmapSink renders a calendar heatmap: one column per week, one row
// per weekday starting on Sunday.
type SvgHeatmapSink struct {
	dir      string
	maxScore float64
	loc      *time.Location
	logger   providers.Logger
}

func NewSvgHeatmapSink(conf *structures.Config, loc *time.Location, logger providers.Logger) *SvgHeatmapSink {
	return &SvgHeatmapSink{
		dir:      conf.Output.Dir,
		maxScore: conf.Score.MaxScore,
		loc:      loc,
		logger:   logger,
	}
}

func (s *SvgHeatmapSink) WriteSeries(kind models.LogKind, year int, series []models.DailyScore) error {
	data := s.Render(kind, year, series)
	path := filepath.Join(s.dir, fmt.Sprintf("%s-%d.svg", kind, year))
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("writing heatmap %s: %w", path, err)
	}
	s.logger.Infof(providers.TypeSink, "Rendered %s heatmap for %d to %s", kind, year, path)
	return nil
}

// Render returns the SVG document for one year of scores.
func (s *SvgHeatmapSink) Render(kind models.LogKind, year int, series []models.DailyScore) []byte {
	values := make(map[string]float64, len(series))
	for _, p := range series {
		values[models.DayKey(p.Date)] = p.Value
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, s.loc)
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, s.loc)
	offset := int(jan1.Weekday())
	weeks := (offset+dec31.YearDay()-1)/7 + 1

	width := leftMargin + weeks*cellStep
	height := topMargin + 7*cellStep + 8

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" font-family="sans-serif" font-size="9">`+"\n", width, height)
	fmt.Fprintf(&b, `<title>%s %d</title>`+"\n", kind, year)

	for _, wd := range labeledWeekdays {
		fmt.Fprintf(&b, `<text x="0" y="%d">%s</text>`+"\n", topMargin+int(wd)*cellStep+cellSize-1, wd.String()[:3])
	}

	for d := jan1; d.Year() == year; d = d.AddDate(0, 0, 1) {
		idx := offset + d.YearDay() - 1
		col, row := idx/7, idx%7
		x := leftMargin + col*cellStep
		y := topMargin + row*cellStep

		if d.Day() == 1 {
			fmt.Fprintf(&b, `<text x="%d" y="%d">%s</text>`+"\n", x, topMargin-8, d.Month().String()[:3])
		}

		key := models.DayKey(d)
		v, ok := values[key]
		if !ok {
			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"><title>%s</title></rect>`+"\n",
				x, y, cellSize, cellSize, palette[0], key)
			continue
		}
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s" data-score="%.1f"><title>%s: %.1f</title></rect>`+"\n",
			x, y, cellSize, cellSize, s.shade(v), v, key, v)
	}

	b.WriteString("</svg>\n")
	return b.Bytes()
}

// shade buckets a scored day into one of the four non-empty colors.
func (s *SvgHeatmapSink) shade(v float64) string {
	level := int(v/s.maxScore*4) + 1
	return palette[max(1, min(level, len(palette)-1))]
}
