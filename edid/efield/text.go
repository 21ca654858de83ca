package efield

import (
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"edid-forge/ds"
	"edid-forge/edid/ebytes"
	"edid-forge/edid/edesc"
)

var dropNonASCII = runes.Remove(runes.Predicate(func(r rune) bool {
	return r > unicode.MaxASCII
}))

// EncodeDescriptorText keeps the ASCII characters of text, cut or space
// padded to exactly 13 bytes.
func EncodeDescriptorText(text string) []byte {
	ascii, _, _ := transform.String(dropNonASCII, text)
	bs := []byte(ascii)
	if len(bs) > ebytes.DescriptorTextSize {
		bs = bs[:ebytes.DescriptorTextSize]
	}
	return append(bs, ds.Repeat(ebytes.DescriptorTextSize-len(bs), byte(' '))...)
}

// SetDescriptorText overwrites the text of the first descriptor tagged tag.
func SetDescriptorText(img *ebytes.Image, tag edesc.Tag, text string) error {
	offset, err := edesc.FindDescriptor(img, tag)
	if err != nil {
		return err
	}
	if err := img.Put(offset+ebytes.DescriptorTextOffset, EncodeDescriptorText(text)); err != nil {
		return errors.Wrap(err, "SetDescriptorText")
	}
	return nil
}
