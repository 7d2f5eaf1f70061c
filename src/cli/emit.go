// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/logger"
	"github.com/H0llyW00dzZ/multilog/src/metrics"
	"github.com/H0llyW00dzZ/multilog/src/registry"
	"github.com/spf13/cobra"
)

type emitOptions struct {
	*rootOptions

	loggerName  string
	levelName   string
	raw         bool
	stdin       bool
	showMetrics bool
}

func newEmitCommand(root *rootOptions) *cobra.Command {
	opts := &emitOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "emit [MESSAGE...]",
		Short: "Write a record through a logger of the registry",
		Long: `Write one record built from MESSAGE, or one record per line of stdin,
through the selected logger. Buffered transports are flushed before exit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}

	cmd.Flags().StringVarP(&opts.loggerName, "logger", "l", registry.AppLoggerName, "logger to write through")
	cmd.Flags().StringVar(&opts.levelName, "level", "info", "record level (debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "write pre-formatted content, ignoring levels and formatters")
	cmd.Flags().BoolVar(&opts.stdin, "stdin", false, "read one record per line from stdin")
	cmd.Flags().BoolVar(&opts.showMetrics, "metrics", false, "print transport counters after writing")

	return cmd
}

func (o *emitOptions) run(cmd *cobra.Command, args []string) (err error) {
	lvl, err := level.Parse(o.levelName)
	if err != nil {
		return err
	}
	if !o.stdin && len(args) == 0 {
		return errors.New("nothing to emit: pass MESSAGE or --stdin")
	}

	collector, err := metrics.NewPrometheus("")
	if err != nil {
		return err
	}

	reg, err := o.openRegistry(registry.WithCollector(collector))
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, reg.Close())
		if err == nil && o.showMetrics {
			err = renderMetrics(cmd.OutOrStdout(), collector)
		}
	}()

	l := reg.Get(o.loggerName)
	if l == nil {
		return fmt.Errorf("%w: %s", ErrUnknownLogger, o.loggerName)
	}

	if !o.stdin {
		o.emit(l, lvl, toAny(args))
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		o.emit(l, lvl, []any{scanner.Text()})
	}
	return scanner.Err()
}

func (o *emitOptions) emit(l *logger.Logger, lvl level.Level, args []any) {
	if o.raw {
		l.Write(args...)
		return
	}
	l.Log(lvl, args, nil)
}

func toAny(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

func renderMetrics(w io.Writer, c *metrics.PrometheusCollector) error {
	samples, err := c.Snapshot()
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(samples))
	for _, s := range samples {
		rows = append(rows, []string{s.Name, s.Labels, fmt.Sprintf("%g", s.Value)})
	}
	return renderTable(w, []string{"Metric", "Labels", "Value"}, rows)
}
