package main

import (
	"os"

	"github.com/npillmayer/llgen/ll/report"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var tableFlags = struct {
	local *bool
	html  *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "table <grammar file>",
		Short:   "Print the LL(1) parse table of a grammar",
		Example: `  llgen table expr.grammar --html expr.html`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTable,
	}
	tableFlags.local = cmd.Flags().Bool("local", false, "number rules per left-hand side")
	tableFlags.html = cmd.Flags().String("html", "", "export the table to an HTML file")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	ga, err := loadAnalysis(args[0])
	if err != nil {
		return err
	}
	numbering := report.Global
	if *tableFlags.local {
		numbering = report.Local
	}
	out := cmd.OutOrStdout()
	if err = report.WriteRules(out, ga.Grammar()); err != nil {
		return err
	}
	if err = report.WriteTable(out, ga, numbering); err != nil {
		return err
	}
	if !ga.IsLL1() {
		pterm.Warning.Printfln("grammar %s is not LL(1)", ga.Grammar().Name)
		if err = report.WriteConflicts(out, ga); err != nil {
			return err
		}
	}
	if *tableFlags.html == "" {
		return nil
	}
	f, err := os.Create(*tableFlags.html)
	if err != nil {
		return err
	}
	defer f.Close()
	if err = report.TableAsHTML(f, ga, numbering); err != nil {
		return err
	}
	pterm.Info.Printfln("table exported to %s", *tableFlags.html)
	return nil
}
