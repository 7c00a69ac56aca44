package sinks

import (
	"fitheat/internal/models"
	"fitheat/internal/providers"
	"fmt"
	"io"
)

type RatioReporterInterface interface {
	Report(kind models.LogKind, year int, report models.RatioReport) error
}

// RatioReporter prints "early / total" on its own line.
type RatioReporter struct {
	out    io.Writer
	logger providers.Logger
}

func NewRatioReporter(out io.Writer, logger providers.Logger) RatioReporterInterface {
	return &RatioReporter{out: out, logger: logger}
}

func (r *RatioReporter) Report(kind models.LogKind, year int, report models.RatioReport) error {
	r.logger.Debugf(providers.TypeSink, "Early ratio for %s-%d: %s", kind, year, report)
	_, err := fmt.Fprintln(r.out, report.String())
	return err
}
