package version

import (
	"fmt"
)

const (
	Version = "0.3"
)

// Printed by the command line tool
var VersionString = fmt.Sprintf("Go-GridLayout %s", Version)
