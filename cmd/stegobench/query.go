package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/yyyoichi/stegotext/harness"
	"github.com/yyyoichi/stegotext/internal/db"
	"github.com/yyyoichi/stegotext/report"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List the runs stored in a results database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		runs, err := database.ListRuns()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, r := range runs {
			fmt.Fprintf(out, "%s\t%s\trepeat=%d\n", r.ID, r.StartedAt.Format(time.RFC3339), r.Repeat)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print the results table of a stored run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer database.Close()

		run, err := database.GetRun(args[0])
		if err != nil {
			return err
		}
		rows, err := database.ListAggregates(run.ID)
		if err != nil {
			return err
		}
		aggregates := make([]harness.AggregateResult, len(rows))
		for i, a := range rows {
			aggregates[i] = a.Result()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Run %s started %s, %d repetitions\n\n", run.ID, run.StartedAt.Format(time.RFC3339), run.Repeat)
		if err := report.WriteTable(out, aggregates); err != nil {
			return err
		}

		if withTrials, _ := cmd.Flags().GetBool("trials"); withTrials {
			trials, err := database.ListTrials(run.ID)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "\nTrials:")
			for _, t := range trials {
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\tE=%v X=%v Runes=%d->%d Plain=%t HTML=%t PDF=%t\n",
					t.Seq, t.Cover, t.Secret, t.Method, t.Embed, t.Extract,
					t.CoverRunes, t.EmbeddedRunes, t.SuccessPlain, t.SuccessHTML, t.SuccessPDF)
			}
		}

		if chart, _ := cmd.Flags().GetString("chart"); chart != "" {
			if err := writeChart(chart, aggregates); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runsCmd, showCmd)
	for _, c := range []*cobra.Command{runsCmd, showCmd} {
		c.Flags().String("db", "", "sqlite file written by run --db")
		_ = c.MarkFlagRequired("db")
	}
	showCmd.Flags().Bool("trials", false, "also list every stored trial")
	showCmd.Flags().String("chart", "", "write an HTML chart of the stored averages to this file")
}

func openStore(cmd *cobra.Command) (*db.DB, error) {
	path, _ := cmd.Flags().GetString("db")
	return db.Open(path)
}
