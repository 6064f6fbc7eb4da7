package config

// DefaultFileName is where Load looks when no config flag is given.
const DefaultFileName = ".patchkit.yaml"

const (
	// envImportLine is the import every patched service must carry.
	envImportLine = "import { env } from '../config/environment';"
	// envImportMarker matches files importing with or without the
	// trailing semicolon.
	envImportMarker = "import { env } from '../config/environment'"
)

// 📚 Default returns the builtin ruleset: point the webhook and Redis
// services at the env module instead of raw process.env lookups.
func Default() *Config {
	return &Config{
		Title: "Fixing Redis connection issues in all services...",
		Files: []FileEntry{
			{
				Path:        "src/services/webhook-processor-optimized-v2.service.ts",
				Import:      envImportLine,
				Marker:      envImportMarker,
				InsertAfter: "import * as crypto from 'crypto';",
				Replacements: []ReplacementEntry{
					{
						Old: "const redisUrl = process.env.REDIS_URL || 'redis://localhost:6379';",
						New: "const redisUrl = env.REDIS_URL || 'redis://localhost:6379';",
					},
					{
						Old: "host: process.env.TRAVELTEK_FTP_HOST || 'ftpeu1prod.traveltek.net',",
						New: "host: env.TRAVELTEK_FTP_HOST || 'ftpeu1prod.traveltek.net',",
					},
					{
						Old: "user: process.env.TRAVELTEK_FTP_USER || process.env.FTP_USER,",
						New: "user: env.TRAVELTEK_FTP_USER,",
					},
					{
						Old: "password: process.env.TRAVELTEK_FTP_PASSWORD || process.env.FTP_PASSWORD,",
						New: "password: env.TRAVELTEK_FTP_PASSWORD,",
					},
				},
			},
			{
				Path:        "src/services/redis-maintenance.service.ts",
				Import:      envImportLine,
				Marker:      envImportMarker,
				InsertAtTop: true,
				Replacements: []ReplacementEntry{
					{Old: "process.env.REDIS_URL", New: "env.REDIS_URL"},
				},
			},
			{
				Path:        "src/services/webhook-processor-optimized.service.ts",
				Import:      envImportLine,
				Marker:      envImportMarker,
				InsertAfter: "import ",
				Replacements: []ReplacementEntry{
					{Old: "process.env.REDIS_URL", New: "env.REDIS_URL"},
				},
			},
			{
				Path:        "src/services/webhook-processor-fixed.service.ts",
				Import:      envImportLine,
				Marker:      envImportMarker,
				InsertAfter: "import ",
				Replacements: []ReplacementEntry{
					{Old: "process.env.REDIS_URL", New: "env.REDIS_URL"},
				},
			},
			{
				Path:        "src/services/webhook-processor-robust.service.ts",
				Import:      envImportLine,
				Marker:      envImportMarker,
				InsertAfter: "import ",
				Replacements: []ReplacementEntry{
					{Old: "process.env.REDIS_URL", New: "env.REDIS_URL"},
				},
			},
		},
		NextSteps: []string{
			"Build: cd backend && npm run build",
			"Commit: git add -A && git commit -m 'Fix Redis connection - use env module'",
			"Push to production: git push origin production",
		},
	}
}
