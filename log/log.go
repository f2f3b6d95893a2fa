// Package log is a thin facade over logrus shared by every component.
package log

import "github.com/sirupsen/logrus"

type Level logrus.Level

const (
	FatalLevel = Level(logrus.FatalLevel)
	ErrorLevel = Level(logrus.ErrorLevel)
	WarnLevel  = Level(logrus.WarnLevel)
	InfoLevel  = Level(logrus.InfoLevel)
	DebugLevel = Level(logrus.DebugLevel)
)

var Logger *logrus.Logger

func init() {
	Logger = logrus.New()
	Logger.Formatter = &logrus.TextFormatter{
		DisableLevelTruncation: true,
		PadLevelText:           true,
		TimestampFormat:        "2006/01/02 15:04:05",
		FullTimestamp:          true,
	}
}

func SetLevel(level Level) {
	Logger.SetLevel(logrus.Level(level))
}

func Logf(level Level, fmt string, args ...any) {
	Logger.Logf(logrus.Level(level), fmt, args...)
}
func Log(level Level, args ...any) {
	Logger.Logln(logrus.Level(level), args...)
}

func Debugf(fmt string, args ...any) {
	Logger.Debugf(fmt, args...)
}
func Debug(args ...any) {
	Logger.Debugln(args...)
}

func Infof(fmt string, args ...any) {
	Logger.Infof(fmt, args...)
}
func Info(args ...any) {
	Logger.Infoln(args...)
}

func Warnf(fmt string, args ...any) {
	Logger.Warnf(fmt, args...)
}
func Warn(args ...any) {
	Logger.Warnln(args...)
}

func Errorf(fmt string, args ...any) {
	Logger.Errorf(fmt, args...)
}
func Error(args ...any) {
	Logger.Errorln(args...)
}

func Fatalf(fmt string, args ...any) {
	Logger.Fatalf(fmt, args...)
}
func Fatal(args ...any) {
	Logger.Fatalln(args...)
}
