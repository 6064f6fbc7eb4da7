// Copyright 2026 Zipsea, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/heyitswin/patchkit/pkg/patch"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 ReplacementEntry is one literal swap applied to a file
type ReplacementEntry struct {
	Old string `json:"old" yaml:"old"` // Text to replace, every occurrence
	New string `json:"new" yaml:"new"` // Text to put in its place
}

// 📄 FileEntry describes the edits one target file should receive
type FileEntry struct {
	Path         string             `json:"path" yaml:"path"`                                       // Target file, relative to root
	Import       string             `json:"import,omitempty" yaml:"import,omitempty"`               // Import line to ensure is present
	Marker       string             `json:"marker,omitempty" yaml:"marker,omitempty"`               // Already-patched guard, defaults to import
	InsertAtTop  bool               `json:"insert_at_top,omitempty" yaml:"insert_at_top,omitempty"` // Put the import before the first line
	InsertAfter  string             `json:"insert_after,omitempty" yaml:"insert_after,omitempty"`   // Put the import after the line containing this text
	Replacements []ReplacementEntry `json:"replacements,omitempty" yaml:"replacements,omitempty"`   // Ordered substitutions
}

// 📚 Config represents one complete patch run
type Config struct {
	Title     string      `json:"title,omitempty" yaml:"title,omitempty"`           // Headline printed before the run
	Root      string      `json:"root,omitempty" yaml:"root,omitempty"`             // Directory file paths resolve against
	Files     []FileEntry `json:"files" yaml:"files"`                               // Files to patch, in order
	NextSteps []string    `json:"next_steps,omitempty" yaml:"next_steps,omitempty"` // Instructions printed after the run
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	// A relative root resolves the same way the file's own paths do,
	// from the directory the config lives in.
	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(filepath.Dir(path), cfg.Root)
	}

	return cfg, nil
}

// 🔍 Validate checks if the configuration is valid
func (cfg *Config) Validate() error {
	if len(cfg.Files) == 0 {
		return errors.Errorf("at least one file entry is required")
	}

	seen := make(map[string]bool, len(cfg.Files))
	for i := range cfg.Files {
		f := &cfg.Files[i]
		if f.Path == "" {
			return errors.Errorf("file %d: path is required", i)
		}
		f.Path = filepath.Clean(f.Path)
		if seen[f.Path] {
			return errors.Errorf("file %d: duplicate path %q", i, f.Path)
		}
		seen[f.Path] = true

		if f.InsertAtTop && f.InsertAfter != "" {
			return errors.Errorf("file %d (%s): insert_at_top and insert_after are mutually exclusive", i, f.Path)
		}
	}

	return nil
}

// 🔄 Rules converts the file entries into engine rules.
func (cfg *Config) Rules() []patch.Rule {
	rules := make([]patch.Rule, 0, len(cfg.Files))
	for _, f := range cfg.Files {
		rule := patch.Rule{
			Path:       f.Path,
			ImportLine: f.Import,
			Mode:       patch.InsertNone,
			Anchor:     f.InsertAfter,
			Marker:     f.Marker,
		}
		switch {
		case f.InsertAtTop:
			rule.Mode = patch.InsertAtTop
		case f.InsertAfter != "":
			rule.Mode = patch.InsertAfterAnchor
		}
		for _, r := range f.Replacements {
			rule.Replacements = append(rule.Replacements, patch.Replacement{Old: r.Old, New: r.New})
		}
		rules = append(rules, rule)
	}
	return rules
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	root := cfg.Root
	if root == "" {
		root = "."
	}
	return fmt.Sprintf("%d file(s) under %s", len(cfg.Files), root)
}

// 🔧 YAMLParser implements the Parser interface for YAML files
type YAMLParser struct{}

func init() {
	Register(&YAMLParser{})
}

func (p *YAMLParser) CanParse(filename string) bool {
	return strings.HasSuffix(filename, ".yaml") || strings.HasSuffix(filename, ".yml")
}

func (p *YAMLParser) Parse(ctx context.Context, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
