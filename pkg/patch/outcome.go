package patch

// 📊 Status classifies what happened to one file during a run.
type Status int

const (
	StatusUnknown        Status = iota
	StatusPatched               // File processed and edits applied
	StatusSkippedMissing        // Target file does not exist
	StatusNoOp                  // Marker already present, nothing changed
	StatusFailed                // Read or write failed, file left as found
)

// String returns a string representation of Status
func (s Status) String() string {
	switch s {
	case StatusPatched:
		return "patched"
	case StatusSkippedMissing:
		return "missing"
	case StatusNoOp:
		return "no-op"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// 📄 Outcome records the result of one rule.
type Outcome struct {
	Path           string // Echo of Rule.Path
	Status         Status // What Apply did with the file
	ImportInserted bool   // Import line was spliced in
	AnchorMissing  bool   // InsertAfterAnchor never found its anchor
	Replacements   int    // Occurrences swapped across all pairs
	Diff           string // Rendered change preview, only with Options.Diff
	Err            error  // Set only when Status is StatusFailed
}

// 🧮 Summary tallies the outcomes of a run.
type Summary struct {
	Patched int
	Missing int
	NoOp    int
	Failed  int
}

// Summarize counts outcomes by status.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Status {
		case StatusPatched:
			s.Patched++
		case StatusSkippedMissing:
			s.Missing++
		case StatusNoOp:
			s.NoOp++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Total returns how many outcomes were tallied.
func (s Summary) Total() int {
	return s.Patched + s.Missing + s.NoOp + s.Failed
}
