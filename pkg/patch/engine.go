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

package patch

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// ⚙️ Options configures how an Engine runs.
type Options struct {
	Root   string // Directory rule paths resolve against, "." when empty
	DryRun bool   // Compute outcomes without touching the filesystem
	Async  bool   // Process files concurrently, one goroutine per rule
	Diff   bool   // Render a change preview into each outcome
}

// 🔧 Engine applies rules to files under a root directory.
type Engine struct {
	opts Options
}

// 🏭 New creates an Engine.
func New(opts Options) *Engine {
	if opts.Root == "" {
		opts.Root = "."
	}
	return &Engine{opts: opts}
}

// 🏃 Apply runs every rule and returns one Outcome per rule, in input
// order. Problems with a file land in its outcome and never abort the
// run.
func (e *Engine) Apply(ctx context.Context, rules []Rule) []Outcome {
	outcomes := make([]Outcome, len(rules))

	if !e.opts.Async {
		for i, rule := range rules {
			outcomes[i] = e.applyRule(ctx, rule)
		}
		return outcomes
	}

	// Rule paths are distinct, so each goroutine owns its file and its
	// slot in the outcome slice exclusively.
	var eg errgroup.Group
	for i, rule := range rules {
		i, rule := i, rule
		eg.Go(func() error {
			outcomes[i] = e.applyRule(ctx, rule)
			return nil
		})
	}
	_ = eg.Wait()

	return outcomes
}

// 📄 applyRule edits a single file per its rule.
func (e *Engine) applyRule(ctx context.Context, rule Rule) Outcome {
	logger := zerolog.Ctx(ctx)
	outcome := Outcome{Path: rule.Path}

	fullPath := filepath.Join(e.opts.Root, rule.Path)

	raw, err := os.ReadFile(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", rule.Path).Msg("target file missing")
			outcome.Status = StatusSkippedMissing
			return outcome
		}
		outcome.Status = StatusFailed
		outcome.Err = errors.Errorf("reading %s: %w", rule.Path, err)
		return outcome
	}

	original := string(raw)
	content := original

	// Presence of the marker means a previous run already inserted the
	// import; never insert twice.
	markerFound := strings.Contains(content, rule.PresenceMarker())

	if !markerFound && rule.ImportLine != "" {
		switch rule.Mode {
		case InsertAtTop:
			content = rule.ImportLine + "\n" + content
			outcome.ImportInserted = true

		case InsertAfterAnchor:
			spliced, ok := spliceAfterAnchor(content, rule.Anchor, rule.ImportLine)
			if !ok {
				logger.Warn().
					Str("path", rule.Path).
					Str("anchor", rule.Anchor).
					Msg("anchor not found, leaving imports alone")
				outcome.AnchorMissing = true
				break
			}
			content = spliced
			outcome.ImportInserted = true
		}
	}

	for _, r := range rule.Replacements {
		if r.Old == "" {
			continue
		}
		n := strings.Count(content, r.Old)
		if n == 0 {
			continue
		}
		content = strings.ReplaceAll(content, r.Old, r.New)
		outcome.Replacements += n
	}

	changed := content != original

	if e.opts.Diff && changed {
		outcome.Diff = renderDiff(original, content)
	}

	if changed && !e.opts.DryRun {
		if err := writeFileAtomic(fullPath, []byte(content)); err != nil {
			outcome.Status = StatusFailed
			outcome.Err = errors.Errorf("writing %s: %w", rule.Path, err)
			return outcome
		}
	}

	if markerFound && !changed {
		logger.Debug().Str("path", rule.Path).Msg("already patched")
		outcome.Status = StatusNoOp
		return outcome
	}

	logger.Debug().
		Str("path", rule.Path).
		Bool("import_inserted", outcome.ImportInserted).
		Int("replacements", outcome.Replacements).
		Msg("file patched")
	outcome.Status = StatusPatched
	return outcome
}

// 🔍 spliceAfterAnchor inserts line on a new line of its own directly
// after the line holding anchor's first occurrence. The line-end search
// starts at the match itself. A last line with no trailing newline gets
// one appended before the insertion. Reports false when the anchor is
// absent or empty, handing content back unchanged.
func spliceAfterAnchor(content, anchor, line string) (string, bool) {
	if anchor == "" {
		// strings.Index would claim a match at offset zero.
		return content, false
	}
	idx := strings.Index(content, anchor)
	if idx < 0 {
		return content, false
	}
	nl := strings.IndexByte(content[idx:], '\n')
	if nl < 0 {
		return content + "\n" + line + "\n", true
	}
	at := idx + nl + 1
	return content[:at] + line + "\n" + content[at:], true
}

// 💾 writeFileAtomic writes content to a temp file and renames it over
// path. An existing target keeps its permission bits; new files get
// 0644.
func writeFileAtomic(path string, content []byte) error {
	mode := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, content, mode); err != nil {
		return errors.Errorf("writing temp file: %w", err)
	}

	// WriteFile modes are umask-filtered, so force the exact bits.
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath) // Clean up temp file
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

// 📝 renderDiff produces a colorized before/after preview.
func renderDiff(before, after string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	return dmp.DiffPrettyText(diffs)
}
