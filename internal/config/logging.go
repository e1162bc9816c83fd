package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// NewLogFile returns a hook writing to the rotated file named by LOG_FILE, or
// nil when LOG_FILE is not set.
func NewLogFile() (logrus.Hook, error) {
	filename, ok := os.LookupEnv("LOG_FILE")
	if !ok || filename == "" {
		return nil, nil
	}

	maxSize := 10
	if s, ok := os.LookupEnv("LOG_FILE_MAX_SIZE_MB"); ok {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("unable to convert LOG_FILE_MAX_SIZE_MB to int: %w", err)
		}
		maxSize = n
	}

	level := logrus.InfoLevel
	if Development() {
		level = logrus.DebugLevel
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   filename,
		MaxSize:    maxSize,
		MaxBackups: 3,
		MaxAge:     28,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return nil, fmt.Errorf("unable to open log file %s: %w", filename, err)
	}
	return hook, nil
}
