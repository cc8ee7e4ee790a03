package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of the track resolution,
// mainly useful when debugging the command line tool.
var ProgressLogger = log.New(os.Stdout, "gridtracks.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like invalid
// grid templates (which are silently disregarded) or ignored CSS declarations.
var WarningLogger = log.New(os.Stdout, "gridtracks.warning: ", log.Lmsgprefix)
