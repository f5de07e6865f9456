package main

import (
	"flag"
	"io"
	"os"

	"epoch-log-summary/epochlog"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	FORMAT_TEXT = "text"
	FORMAT_JSON = "json"
)

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}

func render(w io.Writer, table *epochlog.Table, format string) error {
	switch format {
	case FORMAT_TEXT:
		return table.WriteText(w)
	case FORMAT_JSON:
		return table.WriteJSON(w)
	}
	return errors.Errorf("unknown output format %q", format)
}

func main() {
	var debug bool
	var format string
	logDir := getEnv("EPOCH_LOG_DIR", "./logs")
	mode := getEnv("EPOCH_LOG_MODE", string(epochlog.ModeTraining))

	flag.BoolVar(&debug, "debug", false, "Enable debug mod")
	flag.StringVar(&logDir, "dir", logDir, "Run directory holding the epoch logs")
	flag.StringVar(&mode, "mode", mode, "Which logs to summarize, Training or Testing")
	flag.StringVar(&format, "format", FORMAT_TEXT, "Output format, text or json")
	flag.Parse()

	// stdout carries the table
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{})
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	log.Debugf("dir: %s", logDir)
	log.Debugf("mode: %s", mode)
	log.Debugf("format: %s", format)

	table, err := epochlog.Load(logDir, epochlog.Mode(mode), epochlog.WithLogger(log.StandardLogger()))
	if err != nil {
		log.Fatal("Unable to summarize: ", err)
	}

	if err := render(os.Stdout, table, format); err != nil {
		log.Fatal(err)
	}
}
