package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newProjectCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "Show the resolved project configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := opts.loadProject(nil)
			if err != nil {
				return err
			}

			fmt.Printf("Root:      %s\n", proj.RootDir)
			fmt.Printf("Output:    %s\n", proj.OutDir())
			fmt.Printf("Extension: %s\n", proj.Config.Output.Extension)
			fmt.Printf("Parallel:  %d\n", proj.Config.Output.Parallel)
			if rules := proj.RulesPath(); rules != "" {
				fmt.Printf("Rules:     %s\n", rules)
			}
			fmt.Printf("\nModels:\n")
			for _, m := range proj.ModelPaths() {
				fmt.Printf("  %s\n", m)
			}
			if len(proj.Config.Imports) > 0 {
				fmt.Printf("\nImports: %d custom entries\n", len(proj.Config.Imports))
			}
			return nil
		},
	}
}
