// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/multilog/src/level"
	"github.com/H0llyW00dzZ/multilog/src/registry"
	"github.com/H0llyW00dzZ/multilog/src/transport"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
)

func newInspectCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Print the loggers, transports and routing rules of the registry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			reg, err := root.openRegistry()
			if err != nil {
				return err
			}
			defer func() { err = errors.Join(err, reg.Close()) }()

			return renderRegistry(cmd.OutOrStdout(), reg)
		},
	}
}

// renderRegistry writes the transport table followed by the routing table.
func renderRegistry(w io.Writer, reg *registry.Registry) error {
	var transports, routes [][]string

	for _, name := range reg.Names() {
		l := reg.Get(name)

		l.Each(func(tname string, t transport.Transport) {
			transports = append(transports, []string{
				name,
				tname,
				t.Kind(),
				t.Level().String(),
				strconv.FormatBool(t.Enabled()),
				t.Sink(),
			})
		})

		for _, lvl := range level.Levels {
			if target := l.RedirectTarget(lvl); target != nil {
				routes = append(routes, []string{name, lvl.String(), "redirect", reg.NameOf(target), ""})
			}
			if target, excludes := l.DuplicateTarget(lvl); target != nil {
				routes = append(routes, []string{name, lvl.String(), "duplicate", reg.NameOf(target), strings.Join(excludes, ",")})
			}
		}
	}

	if err := renderTable(w, []string{"Logger", "Transport", "Kind", "Level", "Enabled", "Sink"}, transports); err != nil {
		return err
	}
	if len(routes) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return renderTable(w, []string{"Logger", "Level", "Rule", "Target", "Excludes"}, routes)
}

// renderTable writes a markdown table.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}
