package telemetry

import (
	"context"

	"github.com/foxseedlab/syncbot/internal/config"
	"github.com/foxseedlab/syncbot/internal/telemetry"
	"github.com/samber/do/v2"
)

func RegisterDI(injector do.Injector) {
	do.Provide(injector, func(i do.Injector) (*Exporter, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return NewExporter(context.Background(), DefaultServiceName, cfg.Version)
	})
	do.Provide(injector, func(i do.Injector) (*telemetry.SyncMetrics, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if !cfg.MetricsEnabled() {
			return nil, nil
		}
		exp, err := do.Invoke[*Exporter](i)
		if err != nil {
			return nil, err
		}
		return telemetry.NewSyncMetrics(exp.MeterProvider())
	})
}
