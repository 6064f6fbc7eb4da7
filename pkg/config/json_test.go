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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestJSONParsing tests JSON config parsing
func TestJSONParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_minimal_json",
			config: `{
				"files": [
					{"path": "src/services/redis-maintenance.service.ts"}
				]
			}`,
			check: func(t *testing.T, cfg *Config) {
				require.Len(t, cfg.Files, 1)
				assert.Equal(t, "src/services/redis-maintenance.service.ts", cfg.Files[0].Path)
				assert.Empty(t, cfg.Files[0].Import)
				assert.False(t, cfg.Files[0].InsertAtTop)
			},
		},
		{
			name: "valid_full_json",
			config: `{
				"title": "Fixing Redis connection issues in all services...",
				"root": "backend",
				"files": [
					{
						"path": "src/services/webhook-processor-optimized-v2.service.ts",
						"import": "import { env } from '../config/environment';",
						"marker": "import { env } from '../config/environment'",
						"insert_after": "import * as crypto from 'crypto';",
						"replacements": [
							{"old": "process.env.REDIS_URL", "new": "env.REDIS_URL"},
							{"old": "process.env.TRAVELTEK_FTP_HOST", "new": "env.TRAVELTEK_FTP_HOST"}
						]
					},
					{
						"path": "src/services/redis-maintenance.service.ts",
						"import": "import { env } from '../config/environment';",
						"insert_at_top": true
					}
				],
				"next_steps": ["Build: cd backend && npm run build"]
			}`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "Fixing Redis connection issues in all services...", cfg.Title)
				assert.Equal(t, "backend", cfg.Root)
				require.Len(t, cfg.Files, 2)
				assert.Equal(t, "import * as crypto from 'crypto';", cfg.Files[0].InsertAfter)
				require.Len(t, cfg.Files[0].Replacements, 2)
				assert.Equal(t, "env.TRAVELTEK_FTP_HOST", cfg.Files[0].Replacements[1].New)
				assert.True(t, cfg.Files[1].InsertAtTop)
				assert.Equal(t, []string{"Build: cd backend && npm run build"}, cfg.NextSteps)
			},
		},
		{
			name:        "unknown_field",
			config:      `{"files": [{"path": "a.ts", "imprt": "typo"}]}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "invalid_json_syntax",
			config:      `{"files": [`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "missing_path",
			config:      `{"files": [{"insert_at_top": true}]}`,
			wantErr:     true,
			errContains: "path is required",
		},
	}

	parser := &JSONParser{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Parse(ctx, []byte(tt.config))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}

// 🧪 TestJSONCanParse tests JSON file detection
func TestJSONCanParse(t *testing.T) {
	parser := &JSONParser{}

	assert.True(t, parser.CanParse("config.json"))
	assert.True(t, parser.CanParse("RULES.JSON"))
	assert.True(t, parser.CanParse("  config.json  "))
	assert.False(t, parser.CanParse("config.yaml"))
	assert.False(t, parser.CanParse("json"))
}
