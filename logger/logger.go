// Package logger holds the process wide structured logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// L discards everything until Init is called.
var L *slog.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Options struct {
	Verbose bool
	Format  string
	// Output defaults to os.Stderr.
	Output io.Writer
}

func Init(opts Options) error {
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(opts.Format) {
	case "", FormatText:
		L = slog.New(slog.NewTextHandler(output, handlerOpts))
	case FormatJSON:
		L = slog.New(slog.NewJSONHandler(output, handlerOpts))
	default:
		return errors.Errorf("unknown log format %q, expected %q or %q", opts.Format, FormatText, FormatJSON)
	}
	return nil
}
