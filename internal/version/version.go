package version

import (
	"runtime"
	"time"
)

// Overridden at build time via -ldflags.
var (
	Version   = "dev"                           // ex: v0.1.0
	Commit    = "none"                          // ex: 4f9c2d1
	BuildDate = time.Now().Format(time.RFC3339) // ex: 2026-08-31T10:00:00Z
	GoVersion = runtime.Version()
)
