/*
Package config manages patch rule parsing and validation for patchkit.

	            +-------------+
	            |   Config    |
	            | (Ruleset)   |
	            +------+------+
	                   |
	     +-------------+-------------+
	     |             |             |
	+----+----+   +----+----+   +----+----+
	|  YAML   |   |   HCL   |   |  JSON   |
	| Parser  |   | Parser  |   | Parser  |
	+---------+   +---------+   +---------+

🎯 Purpose:
- Loads per-file patch rules from YAML, HCL, or JSON
- Validates rule structure before the engine runs
- Carries the builtin ruleset used when no file is given
- Converts file entries into engine rules

🔄 Flow:
1. Reads the rule file from disk
2. Picks a parser by file extension
3. Validates paths and insertion modes
4. Hands patch.Rule values to the engine

📝 Design Philosophy:
The config package is the source of truth for what gets patched. The
engine never reads rule files itself; it only sees rules that already
passed validation. Parsers reject unknown fields so a typo in a rule
file fails loudly instead of silently patching nothing.

🔍 Example:

	cfg, err := config.Load(ctx, ".patchkit.yaml")
	if err != nil {
		return err
	}

	engine := patch.New(patch.Options{Root: cfg.Root})
	outcomes := engine.Apply(ctx, cfg.Rules())
*/
package config
