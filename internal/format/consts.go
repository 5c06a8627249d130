// Package format houses the low-level decoders for the GTK icon-theme cache
// ("icon-theme.cache"). Every record is a small view over the caller's buffer;
// records refer to each other with 32-bit offsets from the start of the file.
// All integers are big-endian.
package format

const (
	// HeaderSize is the size of the fixed file header.
	//
	//	Offset  Size  Description
	//	------  ----  ------------------------------------------
	//	 0x00    2    Major version (must be 1)
	//	 0x02    2    Minor version
	//	 0x04    4    Offset of the hash table
	//	 0x08    4    Offset of the directory list
	HeaderSize = 12

	HeaderMajorOffset   = 0x00
	HeaderMinorOffset   = 0x02
	HeaderHashOffset    = 0x04
	HeaderDirListOffset = 0x08

	// SupportedMajorVersion is the only major version this decoder understands.
	SupportedMajorVersion = 1
)

const (
	// CountSize is the width of the element count that prefixes every list.
	CountSize = 4
	// OffsetSize is the width of an offset field.
	OffsetSize = 4
)

// Icon record: {chain, name, image_list}.
const (
	IconSize            = 12
	IconChainOffset     = 0x00
	IconNameOffset      = 0x04
	IconImageListOffset = 0x08
)

// Image record inside an image list: {directory_index, flags, image_data}.
const (
	ImageSize                 = 8
	ImageDirectoryIndexOffset = 0x00
	ImageFlagsOffset          = 0x02
	ImageDataOffset           = 0x04
)

// ImageData record: {pixel_data, meta_data, pixel_data_type, pixel_data_length}.
const (
	ImageDataSize              = 16
	ImageDataPixelDataOffset   = 0x00
	ImageDataMetaDataOffset    = 0x04
	ImageDataPixelTypeOffset   = 0x08
	ImageDataPixelLengthOffset = 0x0C
)

// MetaData record: {embedded_rect, attach_point_list, display_name_list}.
const (
	MetaDataSize                  = 12
	MetaDataEmbeddedRectOffset    = 0x00
	MetaDataAttachPointListOffset = 0x04
	MetaDataDisplayNameListOffset = 0x08
)

const (
	// EmbeddedRectSize covers x0, y0, x1, y1 (u16 each).
	EmbeddedRectSize = 8
	// AttachPointSize covers x, y (u16 each).
	AttachPointSize = 4
	// DisplayNameSize covers the lang and name string offsets.
	DisplayNameSize = 8
)

const (
	// NullOffset marks an absent optional record (image data, metadata, ...).
	NullOffset = 0x00000000
	// InvalidOffset terminates icon chains and marks empty hash buckets.
	InvalidOffset = 0xFFFFFFFF
)
