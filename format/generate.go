package format

import (
	"bytes"
	"context"

	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"
	"golang.org/x/sync/errgroup"

	"github.com/dhamidi/externgen/haxe"
)

var log = commonlog.GetLogger("externgen.format")

const DefaultExtension = ".hx"

type Options struct {
	Extension string
	Imports   []Import
	// Parallel bounds the number of top-level classes rendered at once.
	// Values below 2 render sequentially.
	Parallel int
}

type rendered struct {
	path string
	text []byte
}

// Generate renders every class of the model and hands the results to sink
// in depth-first insertion order. The model must not change while Generate
// runs. It returns the number of units written.
func Generate(ctx context.Context, m *haxe.Model, sink Sink, opts Options) (int, error) {
	if opts.Extension == "" {
		opts.Extension = DefaultExtension
	}
	if opts.Imports == nil {
		opts.Imports = DefaultImports
	}

	roots := m.Classes.All()
	results := make([][]rendered, len(roots))

	g, gctx := errgroup.WithContext(ctx)
	if opts.Parallel > 1 {
		g.SetLimit(opts.Parallel)
	} else {
		g.SetLimit(1)
	}
	for i, root := range roots {
		i, root := i, root
		g.Go(func() error {
			out, err := renderTree(gctx, root, opts)
			if err != nil {
				return errors.Wrapf(err, "render %s", root.FullPath)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var written int
	for _, out := range results {
		for _, r := range out {
			if err := sink.Write(r.path, r.text); err != nil {
				return written, err
			}
			written++
		}
	}
	log.Infof("generated %d declarations", written)
	return written, nil
}

func renderTree(ctx context.Context, root *haxe.Class, opts Options) ([]rendered, error) {
	var out []rendered
	for _, unit := range appendUnits(nil, nil, root) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := NewHaxeEncoder(&buf).WithImports(opts.Imports).Encode(unit); err != nil {
			return nil, err
		}
		out = append(out, rendered{path: unit.Path(opts.Extension), text: buf.Bytes()})
	}
	return out, nil
}
