// Command selectctl прогоняет последовательность кликов по дням через
// автомат выбора диапазона и печатает состояние после каждого клика.
//
//	selectctl replay --lower-bound 2025-03-05 2025-03-10 2025-03-15 2025-03-12
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-ArtistCalendar/internal/domain"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "selectctl",
		Short:        "Date range selection debugging tool",
		SilenceUsage: true,
	}
	root.AddCommand(newReplayCmd())
	return root
}

type replayOptions struct {
	lowerBound string
	clearAfter int
}

func newReplayCmd() *cobra.Command {
	opts := &replayOptions{}

	cmd := &cobra.Command{
		Use:   "replay DATE...",
		Short: "Replay day activations and print the selection after each one",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(cmd.OutOrStdout(), opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.lowerBound, "lower-bound", "", "earliest selectable day (YYYY-MM-DD)")
	cmd.Flags().IntVar(&opts.clearAfter, "clear-after", 0, "clear the selection after the N-th activation (0 = never)")
	return cmd
}

func runReplay(out io.Writer, opts *replayOptions, args []string) error {
	if opts.clearAfter < 0 {
		return fmt.Errorf("--clear-after must not be negative, got %d", opts.clearAfter)
	}

	var lowerBound *time.Time
	if opts.lowerBound != "" {
		d, err := domain.ParseDate(opts.lowerBound)
		if err != nil {
			return fmt.Errorf("--lower-bound: %w", err)
		}
		lowerBound = &d
	}

	dates := make([]time.Time, 0, len(args))
	for _, arg := range args {
		d, err := domain.ParseDate(arg)
		if err != nil {
			return err
		}
		dates = append(dates, d)
	}

	selector := domain.NewRangeSelector(lowerBound)
	for i, d := range dates {
		before := selector.State()
		selector.Activate(d)
		printStep(out, i+1, d, before, selector.Snapshot())

		if opts.clearAfter == i+1 {
			selector.Clear()
			fmt.Fprintln(out, "   cleared")
		}
	}
	return nil
}

func printStep(out io.Writer, n int, day time.Time, before domain.SelectionState, s domain.RangeSelection) {
	fmt.Fprintf(out, "%2d %s  %-9s -> %-9s start=%s end=%s\n",
		n, day.Format(domain.DateFormat), before, s.State(), orDash(s.Start), orDash(s.End))
}

func orDash(t *time.Time) string {
	if s := domain.FormatDate(t); s != nil {
		return *s
	}
	return "-"
}
