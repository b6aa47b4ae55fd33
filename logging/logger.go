package logging

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is replaced by BoostrapLogger at startup; tests may swap it for logrus.New().
var Log = logrus.New()

func BoostrapLogger(level string, json bool) {
	var formatter logrus.Formatter = &logrus.TextFormatter{
		DisableColors:    false,
		DisableQuote:     false,
		DisableTimestamp: false,
		FullTimestamp:    true,
		TimestampFormat:  "",
	}
	if json {
		formatter = &logrus.JSONFormatter{}
	}

	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.DebugLevel
	}

	Log = &logrus.Logger{
		Out:          os.Stdout,
		Hooks:        make(logrus.LevelHooks),
		Formatter:    formatter,
		ReportCaller: false,
		Level:        lvl,
		ExitFunc:     os.Exit,
	}

	Log.SetReportCaller(true)
	if err != nil && level != "" {
		Log.Warnf("unknown log level %q, falling back to debug", level)
	}
}
