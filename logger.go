package wikimark

import (
	"log"
	"os"
)

// Logger is the package-wide logger. The engine logs only recovered host
// panics and settings-store failures.
var Logger = log.New(os.Stderr, "[wikimark] ", log.LstdFlags)

// SetLogger replaces the package logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
