package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/dhamidi/externgen/format"
	"github.com/dhamidi/externgen/project"
)

func newGenerateCmd(opts *rootOptions) *cobra.Command {
	var (
		outDir   string
		parallel int
		watch    bool
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "generate [model...]",
		Short: "Write one extern declaration file per class",
		Long: `Build the model, resolve inherited members, split static overloads,
apply the rules file and write the declarations below the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := opts.loadProject(args)
			if err != nil {
				return err
			}
			if outDir != "" {
				proj.Config.Output.Dir = outDir
			}
			if cmd.Flags().Changed("parallel") {
				proj.Config.Output.Parallel = parallel
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			if err := runGenerate(ctx, proj, dryRun); err != nil {
				return err
			}
			if !watch {
				return nil
			}

			w, err := project.NewWatcher(proj.WatchedPaths(), project.DefaultDebounce)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "watching %d file(s), press Ctrl-C to stop\n", len(proj.WatchedPaths()))
			err = w.Run(ctx, func() error {
				return runGenerate(ctx, proj, dryRun)
			})
			if ctx.Err() != nil {
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory")
	cmd.Flags().IntVarP(&parallel, "parallel", "j", 0, "number of top-level classes rendered at once")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild when a model or the rules file changes")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "list output paths without writing")

	return cmd
}

func runGenerate(ctx context.Context, proj *project.Project, dryRun bool) error {
	if dryRun {
		sink := &format.MemorySink{}
		if _, _, err := proj.Generate(ctx, sink); err != nil {
			return err
		}
		for _, o := range sink.Outputs {
			fmt.Println(o.Path)
		}
		return nil
	}

	n, report, err := proj.Generate(ctx, format.DirSink{Root: proj.OutDir()})
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d file(s) to %s\n", n, proj.OutDir())
	printReport(report)
	return nil
}
