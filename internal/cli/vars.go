package cli

import (
	"github.com/valter-silva-au/covgap/internal/core"
	"github.com/valter-silva-au/covgap/internal/storage"
	"github.com/valter-silva-au/covgap/pkg/models"
)

// Service instances, set during app initialization in app.go.
var (
	Loader    storage.RecordLoader
	Gaps      core.GapEngine
	ReportCfg *models.ReportConfig
)
