package logger

import (
	"log"
	"os"
)

// ProgressLogger logs the main steps of a grid layout,
// like the loading of the input and the sizing of each axis.
var ProgressLogger = log.New(os.Stdout, "gridlayout.progress: ", log.LstdFlags)

// WarningLogger emits a warning for each non fatal error, like unsupported CSS
// values or content which does not fit its grid area.
var WarningLogger = log.New(os.Stdout, "gridlayout.warning: ", log.Lmsgprefix)
