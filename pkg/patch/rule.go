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

// 🧩 InsertMode says where a missing import line goes.
type InsertMode int

const (
	// InsertNone disables insertion; the rule only does replacements.
	InsertNone InsertMode = iota
	// InsertAtTop splices the import line in front of the first byte.
	InsertAtTop
	// InsertAfterAnchor splices the import line onto a new line right
	// after the line containing the anchor's first occurrence.
	InsertAfterAnchor
)

// String returns a string representation of InsertMode
func (m InsertMode) String() string {
	switch m {
	case InsertAtTop:
		return "at-top"
	case InsertAfterAnchor:
		return "after-anchor"
	default:
		return "none"
	}
}

// 🔄 Replacement swaps every occurrence of Old for New. Pairs run in
// declaration order on the progressively edited content, so a later
// pair sees text an earlier pair produced.
type Replacement struct {
	Old string // Literal text to remove, empty pairs are skipped
	New string // Literal text to put in its place
}

// 📋 Rule describes every edit a single file should receive.
type Rule struct {
	Path         string        // Target file, relative to the engine root
	ImportLine   string        // Import statement to ensure is present, empty disables insertion
	Mode         InsertMode    // Where ImportLine goes when it is missing
	Anchor       string        // Substring locating the insertion line (InsertAfterAnchor only)
	Marker       string        // Presence guard, falls back to ImportLine when empty
	Replacements []Replacement // Ordered literal substitutions
}

// PresenceMarker returns the substring whose presence means the file is
// already migrated and the import must not go in again.
func (r Rule) PresenceMarker() string {
	if r.Marker != "" {
		return r.Marker
	}
	return r.ImportLine
}
