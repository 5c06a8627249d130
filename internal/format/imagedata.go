package format

import (
	"fmt"

	"github.com/joshuapare/iconcache/internal/buf"
)

// ImageData is the optional block reached from an Image. The pixel payload
// and its type and length tags are opaque to this package.
type ImageData struct {
	raw []byte
}

func (ImageData) decodeAt(b []byte, off int) (ImageData, error) {
	raw, err := fixed(b, off, ImageDataSize, "image data")
	if err != nil {
		return ImageData{}, err
	}
	return ImageData{raw: raw}, nil
}

func (d ImageData) PixelData() Offset[Opaque] {
	return Offset[Opaque](u32(d.raw, ImageDataPixelDataOffset))
}

func (d ImageData) MetaData() Offset[MetaData] {
	return Offset[MetaData](u32(d.raw, ImageDataMetaDataOffset))
}

func (d ImageData) PixelDataType() Offset[Opaque] {
	return Offset[Opaque](u32(d.raw, ImageDataPixelTypeOffset))
}

func (d ImageData) PixelDataLength() Offset[Opaque] {
	return Offset[Opaque](u32(d.raw, ImageDataPixelLengthOffset))
}

// Opaque is a position in the buffer whose contents are not interpreted.
// Bytes runs from the offset to the end of the buffer since the format
// does not bound it.
type Opaque struct {
	raw []byte
}

func (Opaque) decodeAt(b []byte, off int) (Opaque, error) {
	if !buf.Has(b, off, 1) {
		return Opaque{}, fmt.Errorf("opaque block at 0x%x: %w", off, ErrTruncated)
	}
	return Opaque{raw: b[off:len(b):len(b)]}, nil
}

func (o Opaque) Bytes() []byte { return o.raw }
