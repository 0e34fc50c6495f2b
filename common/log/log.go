package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// 未调用 InitLog 时（库调用方、单元测试）使用 stderr 的默认 logger
var logger = log.New(os.Stderr)

func InitLog(appName string, logLevel string) {
	// 使用 os.Stdout 而不是 os.Stderr，避免控制台把所有日志标红
	logger = newLogger(os.Stdout, appName)
	SetLevel(logLevel)
}

func newLogger(w io.Writer, appName string) *log.Logger {
	l := log.New(w)
	l.SetPrefix(appName)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)

	// 显示文件名和行号，跳过本包这一层
	l.SetReportCaller(true)
	l.SetCallerOffset(1)
	return l
}

// SetLevel 动态调整日志级别，配置热更新时调用
func SetLevel(logLevel string) {
	logger.SetLevel(parseLevel(logLevel))
}

func parseLevel(logLevel string) log.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func Fatal(format string, args ...any) {
	if len(args) == 0 {
		logger.Fatalf(format)
	} else {
		logger.Fatalf(format, args...)
	}
}

func Info(format string, args ...any) {
	if len(args) == 0 {
		logger.Infof(format)
	} else {
		logger.Infof(format, args...)
	}
}

func Warn(format string, args ...any) {
	if len(args) == 0 {
		logger.Warnf(format)
	} else {
		logger.Warnf(format, args...)
	}
}

func Error(format string, args ...any) {
	if len(args) == 0 {
		logger.Errorf(format)
	} else {
		logger.Errorf(format, args...)
	}
}

func Debug(format string, args ...any) {
	if len(args) == 0 {
		logger.Debugf(format)
	} else {
		logger.Debugf(format, args...)
	}
}
