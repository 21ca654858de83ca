package ebytes

import (
	"bytes"
	"encoding/binary"
	"io"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

// NewImageReader reads the image from its first byte. The reader works on a
// copy, later edits to the image are not visible to it.
func NewImageReader(img *Image) *Reader {
	return NewBytesReader(img.Bytes())
}

func (b *Reader) ReadUint8() (uint8, error) {
	return b.ReadByte()
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// return early so that a zero length read at the end of the buffer
	// does not surface io.EOF
	if n == 0 {
		return bs, nil
	}
	if _, err := io.ReadFull(b, bs); err != nil {
		return nil, err
	}
	return bs, nil
}

// Skip moves the reader n bytes forward.
func (b *Reader) Skip(n int) error {
	_, err := b.ReadBytes(n)
	return err
}
