package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"edid-forge/ds"
	"edid-forge/edid"
)

type FileName string

// FileBrowser lists the files of one directory and shows the report of the
// selected one.
type FileBrowser struct {
	dir    string
	files  []FileName
	cursor int
	report string
	err    error
}

func CreateFileBrowser(dir string) (FileBrowser, error) {
	files, err := ReadDirectory(dir)
	if err != nil {
		return FileBrowser{}, err
	}
	return FileBrowser{
		dir:   dir,
		files: files,
	}, nil
}

// ReadDirectory returns the names of the regular files in path, sorted by
// name.
func ReadDirectory(path string) ([]FileName, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadDirectory %s", path)
	}
	fileNames := lo.FilterMap(
		entries,
		func(entry os.DirEntry, _ int) (FileName, bool) {
			return FileName(entry.Name()), entry.Type().IsRegular()
		},
	)
	return fileNames, nil
}

func (s FileBrowser) Selected() (FileName, bool) {
	if len(s.files) == 0 {
		return "", false
	}
	return s.files[s.cursor], true
}

func (s FileBrowser) inspect() FileBrowser {
	s.report, s.err = "", nil
	name, ok := s.Selected()
	if !ok {
		return s
	}
	report, err := edid.Inspect(filepath.Join(s.dir, string(name)))
	if err != nil {
		s.err = err
		return s
	}
	bs, err := ds.MarshalIndent(report, "", "  ")
	if err != nil {
		s.err = err
		return s
	}
	s.report = string(bs)
	return s
}

func (s FileBrowser) View() string {
	output := "EDID FORGE\n\n"
	output += "Directory: " + s.dir + "\n\n"

	if len(s.files) == 0 {
		output += "No files found.\n"
	}
	for i, name := range s.files {
		cursor := " "
		if i == s.cursor {
			cursor = ">"
		}
		output += fmt.Sprintf("%s %s\n", cursor, name)
	}

	switch {
	case s.err != nil:
		output += "\nError: " + s.err.Error() + "\n"
	case s.report != "":
		output += "\n" + s.report + "\n"
	}

	output += "\n" + strings.Join([]string{"up/down: move", "enter: inspect", "q: quit"}, " | ") + "\n"
	return output
}

func (s FileBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.files)-1 {
			s.cursor++
		}
	case "enter":
		s = s.inspect()
	}
	return s, nil
}

func (s FileBrowser) Init() tea.Cmd {
	return nil
}
