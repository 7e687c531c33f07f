package util

import (
	"sync"
)

var (
	globalLogger *Logger
	loggerOnce   sync.Once
)

// InitLogger initializes the global logger instance with debug mode support.
// When the log file cannot be opened the logger degrades to console-only.
func InitLogger(logLevel, logFile string, debugToConsole bool) error {
	var initErr error
	loggerOnce.Do(func() {
		logger, err := NewLogger(logLevel, logFile, debugToConsole)
		if err != nil {
			initErr = err
			logger, _ = NewLogger(logLevel, "", true)
		}
		globalLogger = logger
	})
	return initErr
}

// LogInfo convenience functions for logging
func LogInfo(msg string) {
	if globalLogger != nil {
		globalLogger.Info(msg)
	}
}

func LogInfof(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Infof(format, args...)
	}
}

func LogDebug(msg string) {
	if globalLogger != nil {
		globalLogger.Debug(msg)
	}
}

func LogDebugf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Debugf(format, args...)
	}
}

func LogWarn(msg string) {
	if globalLogger != nil {
		globalLogger.Warn(msg)
	}
}

func LogWarnf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Warnf(format, args...)
	}
}

func LogError(msg string) {
	if globalLogger != nil {
		globalLogger.Error(msg)
	}
}

func LogErrorf(format string, args ...interface{}) {
	if globalLogger != nil {
		globalLogger.Errorf(format, args...)
	}
}
