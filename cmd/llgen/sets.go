package main

import (
	"github.com/npillmayer/llgen/ll/report"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "sets <grammar file>",
		Short:   "Print the FIRST, FOLLOW and FIRST+ sets of a grammar",
		Example: `  llgen sets expr.grammar`,
		Args:    cobra.ExactArgs(1),
		RunE:    runSets,
	}
	rootCmd.AddCommand(cmd)
}

func runSets(cmd *cobra.Command, args []string) error {
	ga, err := loadAnalysis(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err = report.WriteSets(out, "First", ga.FirstSets()); err != nil {
		return err
	}
	if err = report.WriteSets(out, "Follow", ga.FollowSets()); err != nil {
		return err
	}
	return report.WriteSets(out, "First+", ga.FirstPlusSets())
}
