package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(dir string) error {
	fileBrowser, err := CreateFileBrowser(dir)
	if err != nil {
		return err
	}
	if err := tea.NewProgram(fileBrowser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start")
	}
	return nil
}
