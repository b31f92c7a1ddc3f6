// Package game knows the on-disk layout of an Enhanced Edition install:
// where the per-language TLK files live, how to merge a language pair into
// an output directory, and how to install the result with backups.
package game

import (
	"os"
	"path/filepath"

	"bhaalingual/merge"
	"bhaalingual/tlk/tcharset"
	"github.com/pkg/errors"
)

type (
	Options struct {
		GameDir       string
		PrimaryLang   string
		SecondaryLang string
		OutputDir     string
		Separator     string
		Swap          bool
		Codec         *tcharset.Codec
	}
	// Result describes what happened to one TLK file. A skipped file is
	// not an error: en_US has no dialogf.tlk, and that is fine.
	Result struct {
		Filename          string
		Skipped           bool
		SkipReason        string
		SecondaryPath     string
		SecondaryFallback bool
		PrimaryPath       string
		OutputPath        string
		Stats             merge.Stats
	}
)

// DialogFileName is present for every language; GenderedFileName only for
// gendered ones (de_DE, fr_FR, ...).
const (
	DialogFileName   = "dialog.tlk"
	GenderedFileName = "dialogf.tlk"
)

var TLKFileNames = []string{DialogFileName, GenderedFileName}

func LangDir(gameDir string, lang string) string {
	return filepath.Join(gameDir, "lang", lang)
}

func Exists(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}
