package game

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type LanguageInfo struct {
	Name string
	// DialogSize is the size of the language's dialog.tlk in bytes,
	// or -1 when the language directory has none.
	DialogSize int64
}

// ListLanguages returns the installed language directories in name order.
func ListLanguages(gameDir string) ([]LanguageInfo, error) {
	langDir := filepath.Join(gameDir, "lang")
	dirEntries, err := os.ReadDir(langDir)
	if err != nil {
		err := errors.Wrapf(err, "ListLanguages error reading %s", langDir)
		return nil, err
	}

	infos := lo.FilterMap(
		dirEntries,
		func(dirEntry os.DirEntry, _ int) (LanguageInfo, bool) {
			if !dirEntry.IsDir() {
				return LanguageInfo{}, false
			}
			info := LanguageInfo{
				Name:       dirEntry.Name(),
				DialogSize: -1,
			}
			fileInfo, err := os.Stat(filepath.Join(langDir, dirEntry.Name(), DialogFileName))
			if err == nil {
				info.DialogSize = fileInfo.Size()
			}
			return info, true
		},
	)
	return infos, nil
}
