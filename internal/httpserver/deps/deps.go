package deps

import (
	"time"

	"github.com/MrSnakeDoc/ideahub/internal/editor"
	"github.com/MrSnakeDoc/ideahub/internal/logger"
	"github.com/MrSnakeDoc/ideahub/internal/store"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // for testing, defaults to time.Now

	Store  *store.Store   // The post collection, single source of truth
	Editor *editor.Editor // Staged draft session with autosave

	PublicListingPath string // Redirect target for stale public post links
}
