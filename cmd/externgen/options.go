package main

import (
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/dhamidi/externgen/project"
)

type rootOptions struct {
	config  string
	rules   string
	verbose int
	logPath string
}

// loadProject reads the config and applies command line overrides. Model
// and rules paths given on the command line are relative to the working
// directory.
func (o *rootOptions) loadProject(models []string) (*project.Project, error) {
	var p *project.Project
	var err error
	if o.config != "" {
		p, err = project.LoadFile(o.config)
	} else {
		p, err = project.Load()
	}
	if err != nil {
		return nil, err
	}

	if len(models) > 0 {
		p.Config.Models = make([]string, 0, len(models))
		for _, m := range models {
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, errors.Wrapf(err, "model %s", m)
			}
			p.Config.Models = append(p.Config.Models, abs)
		}
	}
	if o.rules != "" {
		abs, err := filepath.Abs(o.rules)
		if err != nil {
			return nil, errors.Wrapf(err, "rules %s", o.rules)
		}
		p.Config.Rules = abs
	}
	return p, nil
}
