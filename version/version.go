package version

import (
	"fmt"
)

const (
	Version = "0.3.0"
)

// VersionString is printed by the command line tool.
var VersionString = fmt.Sprintf("gridtracks %s", Version)
