package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func Start() {
	gameDirSelector := CreateGameDirSelector()
	if err := tea.NewProgram(&gameDirSelector).Start(); err != nil {
		panic(err)
	}
}
