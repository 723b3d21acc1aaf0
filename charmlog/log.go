// Package charmlog provides an implementation of perftrack.Logger using charmbracelet/log
package charmlog

import (
	"io"
	"os"

	"github.com/anhvtran/perftrack"
	"github.com/charmbracelet/log"
)

type Options struct {
	Writer io.Writer
	Level  string
}

func NewLogger(opts Options) perftrack.Logger {
	var w io.Writer = os.Stdout
	if opts.Writer != nil {
		w = opts.Writer
	}

	lvl, err := log.ParseLevel(opts.Level)
	if err != nil {
		lvl = log.InfoLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level: lvl,
	})
}
