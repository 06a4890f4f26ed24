// Package cli is the terminal surface of the console: one cobra command per
// operation plus an interactive browser for the employee list.
package cli

import (
	"context"
	"io"
	"log/slog"

	"github.com/UnknownOlympus/ems-console/internal/bulkimport"
	"github.com/UnknownOlympus/ems-console/internal/client"
	"github.com/UnknownOlympus/ems-console/internal/config"
	"github.com/UnknownOlympus/ems-console/internal/directory"
	"github.com/UnknownOlympus/ems-console/internal/forms"
	"github.com/UnknownOlympus/ems-console/internal/lib/logger"
	"github.com/UnknownOlympus/ems-console/internal/lib/logger/sl"
	"github.com/UnknownOlympus/ems-console/internal/metrics"
	"github.com/UnknownOlympus/ems-console/internal/models"
	"github.com/UnknownOlympus/ems-console/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// App holds what every command needs. Fields left nil are built from the
// configuration before the first command runs.
type App struct {
	Config   *config.Config
	Log      *slog.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	API      client.EmployeeAPI

	configPath string
}

// init fills in every missing dependency.
func (a *App) init(ctx context.Context, logOut io.Writer) {
	if a.Config == nil {
		if a.configPath != "" {
			a.Config = config.MustLoadFile(a.configPath)
		} else {
			a.Config = config.MustLoad()
		}
	}

	if a.Log == nil {
		a.Log = logger.Setup(a.Config.Env, logOut)
	}

	if a.Registry == nil {
		a.Registry = prometheus.NewRegistry()
		a.Registry.MustRegister(collectors.NewGoCollector())
		a.Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	if a.Metrics == nil {
		a.Metrics = metrics.NewMetrics(a.Registry)
	}

	if a.API == nil {
		httpClient := client.CreateHTTPClient(a.Log, a.Config.API.Timeout)
		a.API = client.NewEmployeeClient(a.Log, httpClient, a.Metrics, a.Config.API.BaseURL, a.Config.API.Token)
	}

	if a.Config.Monitoring.Port > 0 {
		go func() {
			if err := server.StartMonitoringServer(
				ctx, a.Log, a.Registry, a.Config.Monitoring.Port, a.Config.API.BaseURL,
			); err != nil {
				a.Log.ErrorContext(ctx, "Monitoring server stopped", sl.Err(err))
			}
		}()
	}
}

func (a *App) role() models.Role {
	return models.ParseRole(a.Config.Role)
}

func (a *App) editor() *forms.Editor {
	return forms.NewEditor(a.Log, a.API, a.Metrics, a.role())
}

func (a *App) directory(onChange func(directory.State)) *directory.Directory {
	return directory.New(a.Log, a.API, a.Metrics, directory.Options{
		Role:        a.role(),
		PageSize:    a.Config.API.PageSize,
		SearchDelay: a.Config.Search.Debounce,
		OnChange:    onChange,
	})
}

func (a *App) importer() *bulkimport.Importer {
	return bulkimport.NewImporter(a.Log, a.API, a.Metrics, a.role(), a.Config.Import.Workers)
}
