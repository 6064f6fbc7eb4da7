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

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()
	require.NotNil(t, cmd, "command should not be nil")
	assert.Equal(t, "patchkit", cmd.Use, "command name should match")
	assert.NotEmpty(t, cmd.Short, "should have short description")

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "apply", "apply command should be registered")
	assert.Contains(t, names, "status", "status command should be registered")
	assert.Contains(t, names, "version", "version command should be registered")
}

func TestExecute_Apply(t *testing.T) {
	tmpDir := t.TempDir()

	target := filepath.Join(tmpDir, "src/services/cache.service.ts")
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0755))
	require.NoError(t, os.WriteFile(target,
		[]byte("import * as crypto from 'crypto';\nconst host = process.env.REDIS_HOST;\n"), 0644))

	configPath := filepath.Join(tmpDir, "rules.yaml")
	configContent := `
title: Fixing Redis connection issues in all services...
files:
  - path: src/services/cache.service.ts
    import: "import { env } from '../config/environment';"
    marker: "import { env } from '../config/environment'"
    insert_after: "import "
    replacements:
      - old: process.env.REDIS_HOST
        new: env.REDIS_HOST
`
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	cmd := NewCommand()
	cmd.SetArgs([]string{"apply", "-c", configPath, "--root", tmpDir})
	require.NoError(t, cmd.ExecuteContext(ctx), "apply should succeed")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t,
		"import * as crypto from 'crypto';\nimport { env } from '../config/environment';\nconst host = env.REDIS_HOST;\n",
		string(data), "file should be patched on disk")
}

func TestExecute_MissingExplicitConfig(t *testing.T) {
	tmpDir := t.TempDir()

	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	cmd := NewCommand()
	cmd.SetArgs([]string{"apply", "-c", filepath.Join(tmpDir, "nope.yaml")})

	err := cmd.ExecuteContext(ctx)
	require.Error(t, err, "explicitly named config must exist")
	assert.Contains(t, err.Error(), "reading ruleset file")
}

func TestExecute_DefaultRulesetFallback(t *testing.T) {
	tmpDir := t.TempDir()

	// No config file anywhere, so the builtin ruleset runs. Every target is
	// absent under an empty root, which is a warning, not a failure.
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	cmd := NewCommand()
	cmd.SetArgs([]string{"apply", "--root", tmpDir})
	require.NoError(t, cmd.ExecuteContext(ctx), "builtin ruleset against an empty tree should succeed")

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Empty(t, entries, "nothing should be created under the root")
}

func TestExecute_Version(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	cmd := NewCommand()

	// A bogus config path must not matter for version
	cmd.SetArgs([]string{"version", "-c", "/nonexistent/rules.yaml"})
	require.NoError(t, cmd.ExecuteContext(ctx), "version should not load the ruleset")
}

func TestFormatVersion(t *testing.T) {
	out := FormatVersion()
	assert.Contains(t, out, "patchkit version info", "banner should be present")
	assert.Contains(t, out, "Go:", "go version should be listed")
	assert.Contains(t, out, "Platform:", "platform should be listed")
}
