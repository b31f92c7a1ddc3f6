package game

import (
	"fmt"
	"os"
	"path/filepath"

	"bhaalingual/merge"
	"bhaalingual/tlk"
	"github.com/pkg/errors"
)

// ProcessFile merges one TLK file of the language pair and writes the result
// into the output directory. When the secondary language has no dialogf.tlk,
// its dialog.tlk is used as the secondary source instead.
func ProcessFile(options Options, filename string) (*Result, error) {
	result := Result{Filename: filename}

	result.PrimaryPath = filepath.Join(LangDir(options.GameDir, options.PrimaryLang), filename)
	if !Exists(result.PrimaryPath) {
		result.Skipped = true
		result.SkipReason = fmt.Sprintf("not found at %s", result.PrimaryPath)
		return &result, nil
	}

	result.SecondaryPath = filepath.Join(LangDir(options.GameDir, options.SecondaryLang), filename)
	if !Exists(result.SecondaryPath) {
		fallbackPath := filepath.Join(LangDir(options.GameDir, options.SecondaryLang), DialogFileName)
		if filename == GenderedFileName && Exists(fallbackPath) {
			result.SecondaryPath = fallbackPath
			result.SecondaryFallback = true
		} else {
			result.Skipped = true
			result.SkipReason = fmt.Sprintf("no %s found for %s", filename, options.SecondaryLang)
			return &result, nil
		}
	}

	primaryBytes, err := os.ReadFile(result.PrimaryPath)
	if err != nil {
		return nil, errors.Wrap(err, "ProcessFile error reading primary")
	}
	secondaryBytes, err := os.ReadFile(result.SecondaryPath)
	if err != nil {
		return nil, errors.Wrap(err, "ProcessFile error reading secondary")
	}

	primary, err := tlk.Decode(primaryBytes, options.Codec)
	if err != nil {
		return nil, errors.Wrapf(err, "ProcessFile error decoding %s", result.PrimaryPath)
	}
	secondary, err := tlk.Decode(secondaryBytes, options.Codec)
	if err != nil {
		return nil, errors.Wrapf(err, "ProcessFile error decoding %s", result.SecondaryPath)
	}

	merged, stats, err := merge.Tables(primary, secondary, options.Separator, options.Swap)
	if err != nil {
		return nil, errors.Wrap(err, "ProcessFile error")
	}
	result.Stats = stats

	mergedBytes, err := tlk.Encode(*merged, options.Codec)
	if err != nil {
		return nil, errors.Wrap(err, "ProcessFile error")
	}
	if err := os.MkdirAll(options.OutputDir, 0755); err != nil {
		return nil, errors.Wrap(err, "ProcessFile error creating output directory")
	}
	result.OutputPath = filepath.Join(options.OutputDir, filename)
	if err := os.WriteFile(result.OutputPath, mergedBytes, 0644); err != nil {
		return nil, errors.Wrapf(err, "ProcessFile error writing %s", result.OutputPath)
	}

	return &result, nil
}
