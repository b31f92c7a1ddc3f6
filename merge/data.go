// Package merge combines two language versions of the same string table into
// one bilingual table, entry by entry.
//
// The two tables are expected to have the same entry count. When they do not,
// merging proceeds over the shorter length anyway and the mismatch is
// surfaced through Stats for the caller to report; a mismatch may well be a
// data-integrity problem, but aborting on it would break real installs where
// one language shipped a few trailing entries more.
package merge

type (
	// Outcome is the decision for one entry pair, keyed only on whether
	// each text is blank and whether the two texts are equal.
	Outcome string
	Stats   struct {
		Total        int `json:"total"`
		Combined     int `json:"combined"`
		Kept         int `json:"kept"`
		Empty        int `json:"empty"`
		PrimaryLen   int `json:"primary_len"`
		SecondaryLen int `json:"secondary_len"`
	}
)

const (
	OutcomeKeepPrimary   = Outcome("keep_primary")
	OutcomeKeepSecondary = Outcome("keep_secondary")
	OutcomeCombine       = Outcome("combine")
	OutcomeKeepEmpty     = Outcome("keep_empty")
)

func (s Stats) CountMismatch() bool {
	return s.PrimaryLen != s.SecondaryLen
}
