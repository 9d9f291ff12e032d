package strata

import (
	"context"
	"log"

	"github.com/strataframe/strata/depend"
	"github.com/strataframe/strata/introspection"
)

// ReportLoggerIntrospector writes a line-per-component summary of the
// wiring report to the registered logger, falling back to the default
// logger when none is registered.
type ReportLoggerIntrospector struct{}

// Introspect logs the report.
func (ReportLoggerIntrospector) Introspect(_ context.Context, report introspection.Report) error {
	logger, err := depend.Resolve[*log.Logger]()
	if err != nil {
		logger = log.Default()
	}

	name := report.AppName
	if name == "" {
		name = "app"
	}
	logger.Printf("%s: %d components wired", name, len(report.Components))
	for _, component := range report.Components {
		logger.Printf("  [%s] %s resolved=%d configs=%d",
			component.Kind, component.Name, len(component.Resolved), len(component.ConfigKeys))
	}
	for _, access := range report.Configs {
		if access.UsedDefault {
			logger.Printf("  config %s: using default %q", access.Key, access.Value)
		}
	}
	return nil
}
