package pkg

import (
	"fmt"
	"log"
	"os"
	"time"
)

const LogTimeFormat = "15:04:05"

// InitLog redirects the standard logger to dest.
func InitLog(dest, prefix string) error {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", dest, err)
	}

	log.SetOutput(f)
	log.SetPrefix(prefix)
	return nil
}

// HandleLog writes every message received from logger to the standard
// logger and passes it to recent when set. It returns when logger is
// closed.
func HandleLog(logger <-chan string, recent func(string)) {
	for msg := range logger {
		log.Println(msg)

		if recent != nil {
			recent(time.Now().Format(LogTimeFormat) + " " + msg)
		}
	}
}
