package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cafecoder-dev/contest-export/src/rankinglib"
	"github.com/cafecoder-dev/contest-export/src/types"
)

func newStandingsCmd() *cobra.Command {
	opts := rankinglib.Options{}

	cmd := &cobra.Command{
		Use:   "standings <contest-id>.json",
		Short: "Print the scoreboard computed from an exported file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var doc types.ExportJSON
			if err := json.Unmarshal(raw, &doc); err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			return printStandings(cmd.OutOrStdout(), doc, rankinglib.Compute(doc, opts))
		},
	}

	cmd.Flags().Int64Var(&opts.FrozenTime, "frozen", 0, "seconds from contest start after which submissions are hidden")
	cmd.Flags().StringSliceVar(&opts.Unofficial, "unofficial", nil, "usernames listed without a rank")

	return cmd
}

func printStandings(w io.Writer, doc types.ExportJSON, rows []rankinglib.Row) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	header := []string{"Rank", "Name"}
	for i := range doc.Problems {
		header = append(header, rankinglib.ProblemCode(i))
	}
	header = append(header, "Score", "Time")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range rows {
		name := row.Username
		if row.FullName != "" {
			name = row.FullName + " (" + row.Username + ")"
		}

		cells := []string{row.Rank, name}
		for _, p := range doc.Problems {
			cells = append(cells, cell(row.Points[p.ProblemID], row.Status[p.ProblemID]))
		}
		cells = append(cells, formatPoints(row.Total), rankinglib.FormatPenalty(row.Penalty))
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	return tw.Flush()
}

func cell(points float64, status rankinglib.Status) string {
	s := formatPoints(points)
	if status&rankinglib.Unattempted != 0 {
		s = "-"
	}
	if status&rankinglib.Pending != 0 {
		s += "?"
	}
	return s
}

func formatPoints(points float64) string {
	return strconv.FormatFloat(points, 'f', -1, 64)
}
