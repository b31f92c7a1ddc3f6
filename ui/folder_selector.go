package ui

import (
	"io/fs"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"bhaalingual/game"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	CwdStateCorrect   = "correct"
	CwdStateIncorrect = "incorrect"
	CwdStateBlank     = ""
)

type GameDirSelector struct {
	cwd      string
	cwdState string
}

func CreateGameDirSelector() GameDirSelector {
	cwd, err := os.Getwd()
	if err != nil {
		err := errors.Wrap(err, "CreateGameDirSelector get current working directory error")
		log.Panic(err)
	}
	return GameDirSelector{
		cwd:      cwd,
		cwdState: checkGameDir(cwd),
	}
}

// checkGameDir treats any directory with a lang/ subtree as a game install.
func checkGameDir(path string) string {
	if game.Exists(filepath.Join(path, "lang")) {
		return CwdStateCorrect
	}
	return CwdStateIncorrect
}

type FileName string

func ReadDirectory(path string) []FileName {
	files, err := ioutil.ReadDir(path)
	if err != nil {
		log.Fatal(err)
	}

	fileNames := lo.Map(
		files,
		func(t fs.FileInfo, _ int) FileName {
			return FileName(t.Name())
		},
	)
	return fileNames
}

func (s GameDirSelector) View() string {
	output := "BHAALINGUAL EDITION\n\n"
	output += "Current directory: " + s.cwd + "\n"

	switch s.cwdState {
	case CwdStateCorrect:
		output += "Looks like a valid game directory"
	case CwdStateIncorrect, CwdStateBlank:
		output += "Please run from the game directory (the folder that contains lang/)"
	default:
		log.Panicf(`GameDirSelector.View unreachable code: invalid state of current directory "%s"`, s.cwdState)
	}
	output += "\n\nPress q to quit.\n"

	return output
}

func (s GameDirSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return s, tea.Quit
		}
	}
	return s, nil
}

func (s GameDirSelector) Init() tea.Cmd {
	return nil
}
