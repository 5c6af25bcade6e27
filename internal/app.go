// Package internal provides the App struct that wires covgap's services
// together and initializes the CLI layer.
package internal

import (
	"github.com/valter-silva-au/covgap/internal/cli"
	"github.com/valter-silva-au/covgap/internal/core"
	"github.com/valter-silva-au/covgap/internal/storage"
	"github.com/valter-silva-au/covgap/pkg/models"
)

// App holds all service dependencies for covgap.
type App struct {
	BasePath string

	// Configuration
	ConfigMgr core.ConfigManager
	Cfg       *models.ReportConfig

	// Services
	Loader storage.RecordLoader
	Gaps   core.GapEngine
}

// NewApp creates and wires all covgap services. basePath is the directory
// searched for the optional .covgap.yaml configuration file (typically the
// working directory).
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	app.ConfigMgr = core.NewConfigManager(basePath)
	cfg, err := app.ConfigMgr.Load()
	if err != nil {
		// Use defaults if the config file is unreadable or invalid.
		cfg = &models.ReportConfig{
			DefaultFormat: "table",
			Gaps: models.GapConfig{
				WarnBelow: core.DefaultGapThresholds().WarnBelow,
				CritBelow: core.DefaultGapThresholds().CritBelow,
			},
		}
	}
	app.Cfg = cfg

	app.Loader = storage.NewRecordLoader()
	app.Gaps = core.NewGapEngine(core.GapThresholds{
		WarnBelow: cfg.Gaps.WarnBelow,
		CritBelow: cfg.Gaps.CritBelow,
	})

	// Export services to the CLI layer.
	cli.Loader = app.Loader
	cli.Gaps = app.Gaps
	cli.ReportCfg = app.Cfg

	return app, nil
}
