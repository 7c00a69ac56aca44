package sinks

import (
	"fitheat/internal/models"
	"os"
	"path/filepath"
)

type SeriesSinkInterface interface {
	WriteSeries(kind models.LogKind, year int, series []models.DailyScore) error
}

// SeriesSinks is the ordered set of sinks a heatmap pipeline writes to.
type SeriesSinks []SeriesSinkInterface

func NewSeriesSinks(svg *SvgHeatmapSink, jsonSink *JsonSeriesSink) SeriesSinks {
	return SeriesSinks{svg, jsonSink}
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpFile := path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	if err = os.Rename(tmpFile, path); err != nil {
		os.Remove(tmpFile)
		return err
	}
	return nil
}
