package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/heathj/domevents/fixture"
)

func main() {
	var (
		pathFile = flag.String("path", "", "YAML fixture describing the event and its path")
		target   = flag.String("target", "", "only print the composed path seen from this target")
		level    = flag.String("log-level", "info", "logrus log level")
	)
	flag.Parse()

	if err := run(os.Stdout, *pathFile, *target, *level); err != nil {
		logrus.WithError(err).Error("domevents failed")
		os.Exit(1)
	}
}

func run(w io.Writer, pathFile, target, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	if pathFile == "" {
		return errors.New("-path is required")
	}

	fx, err := fixture.LoadFile(pathFile)
	if err != nil {
		return err
	}

	var rows []fixture.Row
	if target != "" {
		row, err := fx.ComposedPathFrom(target)
		if err != nil {
			return err
		}
		rows = append(rows, row)
	} else if rows, err = fx.ComposedPaths(); err != nil {
		return err
	}

	for _, row := range rows {
		fmt.Fprintf(w, "%s: %s\n", row.Current, strings.Join(row.Path, " -> "))
	}
	return nil
}
