package logger

import (
	"io"
	"log"
	"os"
	"time"

	gormlogger "gorm.io/gorm/logger"
)

// Loggers for each level. INFO and WARN go to stdout, ERROR to stderr.
var (
	InfoLogger  *log.Logger
	WarnLogger  *log.Logger
	ErrorLogger *log.Logger
)

func init() {
	InfoLogger = log.New(os.Stdout, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	WarnLogger = log.New(os.Stdout, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLogger = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
}

// SetOutput redirects every level to w. Tests use it to silence or capture logs.
func SetOutput(w io.Writer) {
	InfoLogger.SetOutput(w)
	WarnLogger.SetOutput(w)
	ErrorLogger.SetOutput(w)
}

// Info logs a printf-style message at INFO level.
func Info(msg string, v ...interface{}) {
	InfoLogger.Printf(msg, v...)
}

// Warn logs a printf-style message at WARN level.
func Warn(msg string, v ...interface{}) {
	WarnLogger.Printf(msg, v...)
}

// Error logs msg at ERROR level. A non-nil err is appended as ": <err>".
func Error(msg string, err error, v ...interface{}) {
	if err != nil {
		ErrorLogger.Printf(msg+": %v", append(v, err)...)
	} else {
		ErrorLogger.Printf(msg, v...)
	}
}

// Gorm returns a GORM logger writing SQL traces through the INFO logger.
// level is one of silent, error, warn, info.
func Gorm(level string) gormlogger.Interface {
	return gormlogger.New(InfoLogger, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  gormLevel(level),
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func gormLevel(level string) gormlogger.LogLevel {
	switch level {
	case "error":
		return gormlogger.Error
	case "warn":
		return gormlogger.Warn
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Silent
	}
}
