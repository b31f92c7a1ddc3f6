package merge

import (
	"bhaalingual/ds"
	"bhaalingual/tlk"
	"bhaalingual/tlk/tentry"
	"github.com/samber/lo"
)

// Apply builds the merged entry for one pair. The primary entry's sound
// resref, flags, and variance fields are carried in every outcome; only the
// text differs, and the encoder recomputes FlagText from it anyway.
func Apply(primary tentry.Entry, secondary tentry.Entry, outcome Outcome, separator string, swap bool) (tentry.Entry, error) {
	merged := tentry.Entry{
		SoundResref:    ds.ShallowCopy(primary.SoundResref),
		Flags:          primary.Flags,
		VolumeVariance: primary.VolumeVariance,
		PitchVariance:  primary.PitchVariance,
	}
	switch outcome {
	case OutcomeKeepEmpty:
		merged.Text = ""
		merged.Flags = primary.Flags &^ tentry.FlagText
	case OutcomeKeepPrimary:
		merged.Text = primary.Text
	case OutcomeKeepSecondary:
		merged.Text = secondary.Text
	case OutcomeCombine:
		first, second := primary.Text, secondary.Text
		if swap {
			first, second = second, first
		}
		merged.Text = first + separator + second
		merged.Flags = primary.Flags | tentry.FlagText
	default:
		return tentry.Entry{}, ds.ErrUnreachableCode{Caller: "merge.Apply"}
	}
	return merged, nil
}

func Entries(primary tentry.Entry, secondary tentry.Entry, separator string, swap bool) (tentry.Entry, Outcome, error) {
	outcome := Decide(primary.Text, secondary.Text)
	merged, err := Apply(primary, secondary, outcome, separator, swap)
	return merged, outcome, err
}

func Tables(primary *tlk.Table, secondary *tlk.Table, separator string, swap bool) (*tlk.Table, Stats, error) {
	count := primary.Len()
	if secondary.Len() < count {
		count = secondary.Len()
	}

	merged := tlk.New(primary.LanguageID)
	merged.Entries = make([]tentry.Entry, 0, count)
	outcomes := make([]Outcome, 0, count)
	for i := 0; i < count; i++ {
		mergedEntry, outcome, err := Entries(primary.Entries[i], secondary.Entries[i], separator, swap)
		if err != nil {
			return nil, Stats{}, err
		}
		merged.Entries = append(merged.Entries, mergedEntry)
		outcomes = append(outcomes, outcome)
	}

	stats := Stats{
		Total:        count,
		PrimaryLen:   primary.Len(),
		SecondaryLen: secondary.Len(),
	}
	stats.Combined = lo.CountBy(outcomes, func(o Outcome) bool { return o == OutcomeCombine })
	stats.Empty = lo.CountBy(outcomes, func(o Outcome) bool { return o == OutcomeKeepEmpty })
	stats.Kept = stats.Total - stats.Combined - stats.Empty

	return merged, stats, nil
}
