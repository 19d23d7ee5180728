// Package rules applies data-driven corrective edits to a resolved model.
//
// A rule set is a list of (class path, action, arguments) entries loaded
// from YAML or TOML. Rules whose class or member is missing are skipped
// with a notice so one rule file can serve several versions of an API.
package rules

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/tliron/commonlog"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/externgen/haxe"
)

var log = commonlog.GetLogger("externgen.rules")

var (
	ErrRuleConflict  = errors.New("rule conflict")
	ErrUnknownAction = errors.New("unknown rule action")
	ErrInvalidRule   = errors.New("invalid rule")
)

type Action string

const (
	// ActionRename renames Member to To and keeps a native alias to the
	// old name.
	ActionRename Action = "rename"
	// ActionDelete removes Members.
	ActionDelete Action = "delete"
	// ActionDetachParameters moves the primary signature's parameters of
	// Member into a new overload right after it, leaving the primary
	// signature without parameters.
	ActionDetachParameters Action = "detach-parameters"
)

type Rule struct {
	Class   string   `yaml:"class" toml:"class"`
	Action  Action   `yaml:"action" toml:"action"`
	Member  string   `yaml:"member,omitempty" toml:"member"`
	To      string   `yaml:"to,omitempty" toml:"to"`
	Members []string `yaml:"members,omitempty" toml:"members"`
}

type Set struct {
	Rules []Rule `yaml:"rules" toml:"rules"`
}

type Report struct {
	Applied int
	Skipped int
}

// Load reads a rule set, choosing the decoder from the file extension.
func Load(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read rules %s", path)
	}
	set, err := Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return nil, errors.Wrapf(err, "rules %s", path)
	}
	return set, nil
}

// Parse decodes a rule set in the given format ("yaml", "yml", "json" or
// "toml") and validates it.
func Parse(data []byte, format string) (*Set, error) {
	var set Set
	switch strings.ToLower(format) {
	case "toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&set); err != nil {
			return nil, errors.Wrap(err, "decode toml")
		}
	case "yaml", "yml", "json":
		if err := yaml.Unmarshal(data, &set); err != nil {
			return nil, errors.Wrap(err, "decode yaml")
		}
	default:
		return nil, errors.WithHint(errors.Newf("unsupported rules format %q", format),
			"use a .yaml, .yml, .json or .toml file")
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

func (s *Set) Validate() error {
	for i, r := range s.Rules {
		if r.Class == "" {
			return errors.Wrapf(ErrInvalidRule, "rule %d: missing class", i)
		}
		switch r.Action {
		case ActionRename:
			if r.Member == "" || r.To == "" {
				return errors.Wrapf(ErrInvalidRule, "rule %d: rename needs member and to", i)
			}
		case ActionDelete:
			if len(r.Members) == 0 && r.Member == "" {
				return errors.Wrapf(ErrInvalidRule, "rule %d: delete needs members", i)
			}
		case ActionDetachParameters:
			if r.Member == "" {
				return errors.Wrapf(ErrInvalidRule, "rule %d: detach-parameters needs member", i)
			}
		default:
			return errors.Wrapf(ErrUnknownAction, "rule %d: %q", i, r.Action)
		}
	}
	return nil
}

// Apply runs every rule of set against m in order.
func Apply(m *haxe.Model, set *Set) (Report, error) {
	var report Report
	if set == nil {
		return report, nil
	}
	for _, r := range set.Rules {
		c := m.Lookup(r.Class)
		if c == nil {
			log.Noticef("rule %s on %s: class not found, skipping", r.Action, r.Class)
			report.Skipped++
			continue
		}
		applied, err := apply(c, r)
		if err != nil {
			return report, err
		}
		if applied {
			report.Applied++
		} else {
			report.Skipped++
		}
	}
	return report, nil
}

func apply(c *haxe.Class, r Rule) (bool, error) {
	switch r.Action {
	case ActionRename:
		return rename(c, r.Member, r.To)
	case ActionDelete:
		names := append(append([]string(nil), r.Members...), nonEmpty(r.Member)...)
		return remove(c, names), nil
	case ActionDetachParameters:
		return detachParameters(c, r.Member), nil
	}
	return false, errors.Wrapf(ErrUnknownAction, "%q", r.Action)
}

func rename(c *haxe.Class, name, to string) (bool, error) {
	if c.Members.Has(to) {
		return false, errors.Wrapf(ErrRuleConflict, "cannot rename %s.%s to %s: already exists", c.FullPath, name, to)
	}
	member := c.Members.Get(name)
	if member == nil {
		log.Noticef("rename on %s: member %s not found, skipping", c.FullPath, name)
		return false, nil
	}
	c.Members.Rename(name, to)
	haxe.AddMemberMetadata(member, haxe.NativeAlias(name))
	return true, nil
}

func remove(c *haxe.Class, names []string) bool {
	var removed bool
	for _, name := range names {
		if !c.Members.Has(name) {
			log.Noticef("delete on %s: member %s not found", c.FullPath, name)
			continue
		}
		c.Members.Delete(name)
		removed = true
	}
	return removed
}

func detachParameters(c *haxe.Class, name string) bool {
	method, ok := c.Members.Get(name).(*haxe.Method)
	if !ok {
		log.Noticef("detach-parameters on %s: method %s not found", c.FullPath, name)
		return false
	}
	primary := method.Primary()
	detached := &haxe.Signature{Type: primary.Type, Parameters: primary.Parameters}
	primary.Parameters = nil

	overloads := make([]*haxe.Signature, 0, len(method.Overloads)+1)
	overloads = append(overloads, primary, detached)
	method.Overloads = append(overloads, method.Overloads[1:]...)
	return true
}

func nonEmpty(s string) []string {
	if s == "" {
		return nil
	}
	return []string{s}
}
