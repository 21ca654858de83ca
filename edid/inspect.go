package edid

import (
	"os"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"

	"edid-forge/edid/einfo"
	"edid-forge/edid/ehex"
	"edid-forge/logger"
)

func Inspect(path string) (*orderedmap.OrderedMap, error) {
	img, err := ReadImage(path)
	if err != nil {
		return nil, err
	}
	if !IsEDID(img.Bytes()) {
		logger.L.Warn("missing edid header", "file", path)
	}
	return einfo.Summarize(img), nil
}

// DumpFile renders a binary image as hex text that ConvertFile accepts.
func DumpFile(path string) (string, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return ehex.Dump(bs), nil
}
