// Package main is the ttdump CLI: it decodes one ttbin activity-log capture
// into human-readable text on standard output.
//
// Decoded records go to stdout; operational diagnostics (open failures,
// truncation, pass summary) go to stderr. The process exits 0 only when the
// capture decodes cleanly to end-of-stream.
package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/arloliu/ttbin"
	"github.com/arloliu/ttbin/capture"
	"github.com/arloliu/ttbin/errs"
	"github.com/arloliu/ttbin/format"
)

const (
	flagDebug   = "debug"
	flagDialect = "dialect"
)

func main() {
	app := &cli.App{
		Name:      "ttdump",
		Usage:     "decode a ttbin activity-log capture into diagnostic text",
		ArgsUsage: "<capture.ttbin>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "log a pass summary to stderr",
			},
			&cli.StringFlag{
				Name:  flagDialect,
				Usage: "dialect assumed before the header is seen (legacy or current)",
				Value: "current",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ttdump:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	logger := newLogger(c.Bool(flagDebug))
	defer logger.Sync() //nolint:errcheck

	if c.NArg() < 1 {
		return fmt.Errorf("%w, usage: ttdump <capture.ttbin>", errs.ErrNoInputPath)
	}

	var opts []ttbin.Option
	switch c.String(flagDialect) {
	case "legacy":
		opts = append(opts, ttbin.WithDialect(format.DialectLegacy))
	case "current":
	default:
		return fmt.Errorf("unknown dialect %q, want legacy or current", c.String(flagDialect))
	}

	path := c.Args().First()
	data, err := capture.Load(path)
	if err != nil {
		logger.Error("cannot load capture", zap.String("path", path), zap.Error(err))

		return err
	}

	stats, err := ttbin.Dump(bytes.NewReader(data), os.Stdout, opts...)
	if err != nil {
		logger.Error("pass aborted",
			zap.String("path", path),
			zap.Int("records", stats.Records),
			zap.Int64("bytes", stats.Bytes),
			zap.Error(err))

		return err
	}

	logger.Debug("pass complete",
		zap.String("path", path),
		zap.Int("records", stats.Records),
		zap.Int("unknown_tags", stats.UnknownTags),
		zap.Int64("bytes", stats.Bytes))

	return nil
}

// newLogger builds the stderr diagnostic logger. Without --debug only errors
// are logged, keeping stderr quiet on a clean pass.
func newLogger(debug bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	return zap.Must(cfg.Build())
}
