package commands

import (
	"testing"

	"github.com/fatih/color"
	"github.com/heyitswin/patchkit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunStatus(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx := setupTestContext(t)
	tmpDir := t.TempDir()

	pendingContent := "import * as crypto from 'crypto';\nconst host = process.env.REDIS_HOST;\n"
	writeTestFile(t, tmpDir, "src/services/cache.service.ts", pendingContent)
	writeTestFile(t, tmpDir, "src/services/done.service.ts",
		"import { env } from '../config/environment';\nconst host = env.REDIS_HOST;\n")

	done := cacheServiceEntry()
	done.Path = "src/services/done.service.ts"

	cfg := &config.Config{
		Title: "Fixing Redis connection issues in all services...",
		Files: []config.FileEntry{
			cacheServiceEntry(),
			done,
			{
				Path:   "src/services/missing.service.ts",
				Import: "import { env } from '../config/environment';",
				Marker: "import { env } from '../config/environment'",
			},
		},
	}

	o, buf := setupTestOpts(t, cfg, tmpDir)
	err := runStatus(ctx, o, false)

	require.Error(t, err, "pending files should make status exit non-zero")
	assert.Contains(t, err.Error(), "1 file(s) pending")

	output := buf.String()
	assert.Contains(t, output, "patchkit • patch status", "branded header should be printed")
	assert.Contains(t, output, "pending", "pending file should be reported")
	assert.Contains(t, output, "applied", "up-to-date file should be reported")
	assert.Contains(t, output, "missing", "absent file should be reported")

	assert.Equal(t, pendingContent, readTestFile(t, tmpDir, "src/services/cache.service.ts"),
		"status should never write")
}

func TestRunStatus_AllApplied(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx := setupTestContext(t)
	tmpDir := t.TempDir()

	writeTestFile(t, tmpDir, "src/services/cache.service.ts",
		"import { env } from '../config/environment';\nconst host = env.REDIS_HOST;\n")

	cfg := &config.Config{
		Title: "Fixing Redis connection issues in all services...",
		Files: []config.FileEntry{cacheServiceEntry()},
	}

	o, buf := setupTestOpts(t, cfg, tmpDir)
	require.NoError(t, runStatus(ctx, o, false), "fully patched tree should pass")
	assert.Contains(t, buf.String(), "✅ All files up to date")
}

func TestRunStatus_WithDiff(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	ctx := setupTestContext(t)
	tmpDir := t.TempDir()

	writeTestFile(t, tmpDir, "src/services/cache.service.ts",
		"import * as crypto from 'crypto';\nconst host = process.env.REDIS_HOST;\n")

	cfg := &config.Config{
		Title: "Fixing Redis connection issues in all services...",
		Files: []config.FileEntry{cacheServiceEntry()},
	}

	o, _ := setupTestOpts(t, cfg, tmpDir)
	err := runStatus(ctx, o, true)

	require.Error(t, err, "pending file should still exit non-zero with --diff")
	assert.Contains(t, err.Error(), "1 file(s) pending")
}
