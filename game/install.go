package game

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Install copies merged TLK files from the output directory into the game's
// primary language directory. The first install backs each original up as
// *.bak; an existing backup is never overwritten, so repeated installs keep
// the pristine original.
func Install(gameDir string, lang string, outputDir string, filenames []string) ([]string, error) {
	langDir := LangDir(gameDir, lang)
	installed := make([]string, 0, len(filenames))
	for _, filename := range filenames {
		src := filepath.Join(outputDir, filename)
		dst := filepath.Join(langDir, filename)
		bak := dst + ".bak"

		if !Exists(src) {
			continue
		}
		if Exists(dst) && !Exists(bak) {
			if err := copyFile(dst, bak); err != nil {
				return installed, errors.Wrapf(err, "Install error backing up %s", dst)
			}
		}
		if err := copyFile(src, dst); err != nil {
			return installed, errors.Wrapf(err, "Install error copying %s", src)
		}
		installed = append(installed, filename)
	}
	return installed, nil
}

// Restore puts the *.bak originals back and removes the backups.
func Restore(gameDir string, lang string, filenames []string) ([]string, error) {
	langDir := LangDir(gameDir, lang)
	restored := make([]string, 0, len(filenames))
	for _, filename := range filenames {
		dst := filepath.Join(langDir, filename)
		bak := dst + ".bak"
		if !Exists(bak) {
			continue
		}
		if err := copyFile(bak, dst); err != nil {
			return restored, errors.Wrapf(err, "Restore error copying %s", bak)
		}
		if err := os.Remove(bak); err != nil {
			return restored, errors.Wrapf(err, "Restore error removing %s", bak)
		}
		restored = append(restored, filename)
	}
	return restored, nil
}

func copyFile(src string, dst string) error {
	bs, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, bs, 0644)
}
