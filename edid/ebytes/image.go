package ebytes

import (
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"edid-forge/ds"
)

func NewImage(bs []byte) *Image {
	return &Image{
		bs: ds.ShallowCopy(bs),
	}
}

func IsValidSize(n int) bool {
	return lo.Contains(ValidSizes, n)
}

func (r *Image) Len() int {
	return len(r.bs)
}

// Bytes returns a copy of the underlying buffer, safe to hand to a writer.
func (r *Image) Bytes() []byte {
	return ds.ShallowCopy(r.bs)
}

// Has reports whether [off, off+n) lies within the image.
func (r *Image) Has(off int, n int) bool {
	return off >= 0 && n >= 0 && off <= len(r.bs) && n <= len(r.bs)-off
}

func (r *Image) Byte(off int) (byte, error) {
	if !r.Has(off, 1) {
		return 0, errors.Wrapf(ErrOutOfBounds, "read byte at 0x%02X of %d", off, len(r.bs))
	}
	return r.bs[off], nil
}

func (r *Image) SetByte(off int, b byte) error {
	if !r.Has(off, 1) {
		return errors.Wrapf(ErrOutOfBounds, "write byte at 0x%02X of %d", off, len(r.bs))
	}
	r.bs[off] = b
	return nil
}

// Slice returns a view of [off, off+n). Writes through the view change the image.
func (r *Image) Slice(off int, n int) ([]byte, error) {
	if !r.Has(off, n) {
		return nil, errors.Wrapf(
			ErrOutOfBounds, "slice [0x%02X, 0x%02X) of %d",
			off, off+n, len(r.bs),
		)
	}
	return r.bs[off : off+n], nil
}

func (r *Image) Put(off int, bs []byte) error {
	view, err := r.Slice(off, len(bs))
	if err != nil {
		return errors.Wrap(err, "put")
	}
	copy(view, bs)
	return nil
}

// Sum adds up [off, off+n) modulo 256.
func (r *Image) Sum(off int, n int) (byte, error) {
	view, err := r.Slice(off, n)
	if err != nil {
		return 0, err
	}
	return lo.Reduce(
		view,
		func(sum byte, b byte, _ int) byte {
			return sum + b
		},
		0,
	), nil
}
