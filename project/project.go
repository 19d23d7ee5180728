package project

import (
	"context"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"

	"github.com/dhamidi/externgen/format"
	"github.com/dhamidi/externgen/haxe"
	"github.com/dhamidi/externgen/rules"
	"github.com/dhamidi/externgen/source"
)

var log = commonlog.GetLogger("externgen.project")

var ErrNoModels = errors.New("no model files")

// Project is a set of model files plus the rules and output settings that
// turn them into extern declarations.
type Project struct {
	RootDir string
	Config  *Config
}

// Report counts what each pass of a build did.
type Report struct {
	Classes  int
	Heritage haxe.HeritageReport
	Statics  int
	Rules    rules.Report
}

// Load reads the project in the current directory.
func Load() (*Project, error) {
	return LoadFrom(".")
}

// LoadFrom reads rootDir/externgen.toml when present and falls back to the
// defaults otherwise.
func LoadFrom(rootDir string) (*Project, error) {
	config, err := LoadConfig(findConfig(rootDir))
	if err != nil {
		return nil, err
	}
	return &Project{RootDir: rootDir, Config: config}, nil
}

// LoadFile reads the given config file. Relative paths inside it resolve
// against the file's directory.
func LoadFile(path string) (*Project, error) {
	config, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return &Project{RootDir: filepath.Dir(path), Config: config}, nil
}

func (p *Project) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.RootDir, path)
}

// ModelPaths returns the configured model files in order.
func (p *Project) ModelPaths() []string {
	paths := make([]string, 0, len(p.Config.Models))
	for _, m := range p.Config.Models {
		paths = append(paths, p.resolve(m))
	}
	return paths
}

// RulesPath returns the rules file, or "" when none is configured.
func (p *Project) RulesPath() string {
	return p.resolve(p.Config.Rules)
}

func (p *Project) OutDir() string {
	return p.resolve(p.Config.Output.Dir)
}

// WatchedPaths lists every input file of a build.
func (p *Project) WatchedPaths() []string {
	paths := p.ModelPaths()
	if r := p.RulesPath(); r != "" {
		paths = append(paths, r)
	}
	return paths
}

// Build loads every model into one builder and runs the heritage,
// static partition and rule passes in that order.
func (p *Project) Build() (*haxe.Model, Report, error) {
	var report Report
	paths := p.ModelPaths()
	if len(paths) == 0 {
		return nil, report, errors.WithHint(ErrNoModels,
			"list model files under 'models' in externgen.toml or pass them as arguments")
	}

	b := haxe.NewBuilder()
	for _, path := range paths {
		if err := source.Load(b, path); err != nil {
			return nil, report, err
		}
	}
	m, err := b.Finish()
	if err != nil {
		return nil, report, err
	}
	m.Walk(func(*haxe.Class) { report.Classes++ })

	if report.Heritage, err = m.ResolveHeritage(); err != nil {
		return nil, report, errors.Wrap(err, "resolve heritage")
	}
	if report.Statics, err = m.PartitionStatics(); err != nil {
		return nil, report, errors.Wrap(err, "partition statics")
	}

	if path := p.RulesPath(); path != "" {
		set, err := rules.Load(path)
		if err != nil {
			return nil, report, err
		}
		if report.Rules, err = rules.Apply(m, set); err != nil {
			return nil, report, errors.Wrap(err, "apply rules")
		}
	}

	log.Infof("built %d classes: %d redundant members deleted, %d renamed, %d statics split, %d rules applied",
		report.Classes, report.Heritage.Deleted, report.Heritage.Renamed, report.Statics, report.Rules.Applied)
	return m, report, nil
}

// Options returns the emitter options of the project.
func (p *Project) Options() format.Options {
	opts := format.Options{
		Extension: p.Config.Output.Extension,
		Imports:   format.DefaultImports,
		Parallel:  p.Config.Output.Parallel,
	}
	if len(p.Config.Imports) > 0 {
		opts.Imports = p.Config.Imports
	}
	return opts
}

// Generate builds the model and writes one unit per class to sink.
func (p *Project) Generate(ctx context.Context, sink format.Sink) (int, Report, error) {
	m, report, err := p.Build()
	if err != nil {
		return 0, report, err
	}
	n, err := format.Generate(ctx, m, sink, p.Options())
	if err != nil {
		return n, report, errors.Wrap(err, "generate")
	}
	return n, report, nil
}
