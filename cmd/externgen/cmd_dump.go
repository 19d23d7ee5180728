package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/dhamidi/externgen/format"
)

func newDumpCmd(opts *rootOptions) *cobra.Command {
	var dumpFormat string

	cmd := &cobra.Command{
		Use:   "dump [model...]",
		Short: "Dump the resolved class model",
		RunE: func(cmd *cobra.Command, args []string) error {
			proj, err := opts.loadProject(args)
			if err != nil {
				return err
			}
			m, _, err := proj.Build()
			if err != nil {
				return err
			}

			enc, err := newDumpEncoder(dumpFormat, os.Stdout, proj.Options().Imports)
			if err != nil {
				return err
			}
			for _, unit := range format.Units(m) {
				if err := enc.Encode(unit); err != nil {
					return errors.Wrapf(err, "encode %s", dumpFormat)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dumpFormat, "format", "f", "line", "output format (json, haxe, line)")

	return cmd
}

func newDumpEncoder(name string, w io.Writer, imports []format.Import) (format.Encoder, error) {
	switch name {
	case "json":
		return format.NewJSONEncoder(w), nil
	case "line":
		return format.NewLineEncoder(w), nil
	case "haxe":
		return format.NewHaxeEncoder(w).WithImports(imports), nil
	}
	return nil, errors.Newf("unknown format: %s (expected json, haxe, or line)", name)
}
