package edid

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"edid-forge/ds"
	"edid-forge/edid/ebytes"
	"edid-forge/edid/efield"
	"edid-forge/logger"
)

// ReadImage loads a binary image. A size other than 128 bytes is only
// warned about.
func ReadImage(path string) (*ebytes.Image, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if len(bs) != ebytes.BlockSize {
		logger.L.Warn("not 128 byte length edid", "file", path, "bytes", len(bs))
	}
	return ebytes.NewImage(bs), nil
}

// WriteFile creates the parent directories of path as needed.
func WriteFile(path string, bs []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return errors.Wrapf(err, "create directory for %s", path)
	}
	if err := os.WriteFile(path, bs, FilePerm); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// EditFile applies edits to the image at input and writes the result, same
// length as the input, to output.
func EditFile(input string, output string, edits efield.Edits) error {
	img, err := ReadImage(input)
	if err != nil {
		return err
	}
	logger.L.Debug("editing", "file", input, "edits", ds.DumpJSON(edits))
	if err := efield.Apply(img, edits); err != nil {
		return errors.Wrapf(err, "edit %s", input)
	}
	if err := WriteFile(output, img.Bytes()); err != nil {
		return err
	}
	logger.L.Info("edited", "input", input, "output", output)
	return nil
}
