// Package config loads and saves the user's policy overrides file. Only
// policy travels through here: measurement results are session-scoped and are
// never written to disk.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/hellasleeper108/bigO/internal/catalog"
	"github.com/hellasleeper108/bigO/internal/governor"
	"github.com/hellasleeper108/bigO/internal/rank"
	"github.com/hellasleeper108/bigO/internal/validate"
)

// DefaultPath is where the policy overrides file lives unless --policy says
// otherwise.
const DefaultPath = "~/.config/bigo/policy.yaml"

// RuleFile is one per-class override row, keyed in the file by class name.
type RuleFile struct {
	TeachingMaxN int `yaml:"teaching_max_n" validate:"min=0"`
	ChaosMaxN    int `yaml:"chaos_max_n"    validate:"min=0"`
	BudgetMS     int `yaml:"budget_ms"      validate:"min=0"`
}

// BandFile is one judgment band row; ceiling_ms zero marks the catch-all.
type BandFile struct {
	CeilingMS int    `yaml:"ceiling_ms" validate:"min=0"`
	Judgment  string `yaml:"judgment"   validate:"required"`
}

// File is the on-disk policy overrides document. Absent sections fall back to
// the built-in defaults.
type File struct {
	Rules           map[string]RuleFile `yaml:"rules,omitempty"`
	Bands           []BandFile          `yaml:"bands,omitempty"`
	TeachingDelayMS *int                `yaml:"teaching_delay_ms,omitempty"`
}

// PolicyStore handles the loading and saving of the policy file.
type PolicyStore struct {
	Path string `validate:"required"`
	File File
}

// NewPolicyStore loads the overrides at path, expanding a leading tilde. A
// missing file is not an error; it means no overrides.
func NewPolicyStore(path string) (*PolicyStore, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}

	s := &PolicyStore{Path: expandedPath}
	if err := s.Load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}
	return s, nil
}

func (s *PolicyStore) Load() error {
	logrus.Debug("Loading policy file from: ", s.Path)
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, &s.File); err != nil {
		return err
	}
	s.heal()
	return nil
}

// heal drops override rows that cannot be applied rather than failing the
// whole run over a typo in a config file.
func (s *PolicyStore) heal() {
	for name, rule := range s.File.Rules {
		if _, err := catalog.ParseLabel(name); err != nil {
			logrus.Warnf("Unknown complexity class %q in policy file; ignoring.", name)
			delete(s.File.Rules, name)
			continue
		}
		if err := validate.Struct(rule); err != nil {
			logrus.Warnf("Invalid rule for %q in policy file; ignoring.", name)
			delete(s.File.Rules, name)
			continue
		}
		// A chaos ceiling below the teaching one would make chaos mode stricter;
		// raise it. Zero stays zero (unlimited).
		if rule.ChaosMaxN != 0 && rule.ChaosMaxN < rule.TeachingMaxN {
			logrus.Warnf("Chaos ceiling below teaching ceiling for %q; raising to match.", name)
			rule.ChaosMaxN = rule.TeachingMaxN
			s.File.Rules[name] = rule
		}
	}

	kept := s.File.Bands[:0]
	for _, band := range s.File.Bands {
		if err := validate.Struct(band); err != nil {
			logrus.Warn("Invalid judgment band in policy file; ignoring.")
			continue
		}
		kept = append(kept, band)
	}
	s.File.Bands = kept
}

// Save writes the overrides back to the file.
func (s *PolicyStore) Save() error {
	logrus.Debug("Saving policy file to: ", s.Path)
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(s.File)
	if err != nil {
		return err
	}
	return os.WriteFile(s.Path, data, 0o600)
}

// BuildPolicy returns the built-in governor policy with the file's overrides
// applied on top.
func (s *PolicyStore) BuildPolicy() *governor.Policy {
	p := governor.DefaultPolicy()
	for name, rule := range s.File.Rules {
		label, err := catalog.ParseLabel(name)
		if err != nil {
			continue // heal() already warned
		}
		p.SetRule(label, governor.Rule{
			TeachingMaxN: rule.TeachingMaxN,
			ChaosMaxN:    rule.ChaosMaxN,
			Budget:       time.Duration(rule.BudgetMS) * time.Millisecond,
		})
	}
	if s.File.TeachingDelayMS != nil {
		p.SetTeachingDelay(time.Duration(*s.File.TeachingDelayMS) * time.Millisecond)
	}
	return p
}

// BuildBands returns the judgment scale: the file's bands when present, the
// built-in scale otherwise.
func (s *PolicyStore) BuildBands() rank.Bands {
	if len(s.File.Bands) == 0 {
		return rank.DefaultBands()
	}
	bands := make(rank.Bands, 0, len(s.File.Bands))
	for _, b := range s.File.Bands {
		bands = append(bands, rank.Band{
			Ceiling:  time.Duration(b.CeilingMS) * time.Millisecond,
			Judgment: b.Judgment,
		})
	}
	return bands
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}
