package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/externgen/project"
)

func newCheckCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [model...]",
		Short: "Run every pass without writing output",
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := opts.loadProject(args)
			if err != nil {
				return err
			}
			_, report, err := proj.Build()
			if err != nil {
				return err
			}
			printReport(report)
			return nil
		},
	}
}

func printReport(r project.Report) {
	fmt.Printf("Classes:     %d\n", r.Classes)
	fmt.Printf("Deleted:     %d redundant member(s)\n", r.Heritage.Deleted)
	fmt.Printf("Renamed:     %d member(s)\n", r.Heritage.Renamed)
	if r.Heritage.Unresolved > 0 {
		fmt.Printf("Unresolved:  %d superclass(es)\n", r.Heritage.Unresolved)
	}
	fmt.Printf("Statics:     %d method(s) split\n", r.Statics)
	fmt.Printf("Rules:       %d applied, %d skipped\n", r.Rules.Applied, r.Rules.Skipped)
}
