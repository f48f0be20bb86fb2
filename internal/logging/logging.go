package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

// Setup configures the default logger for the application.
// Unknown level strings fall back to info.
func Setup(level string) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(true)

	parsed, err := log.ParseLevel(level)
	if err != nil {
		parsed = log.InfoLevel
	}
	log.SetLevel(parsed)
}
