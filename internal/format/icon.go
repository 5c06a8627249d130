package format

// Icon is one entry of a bucket's collision chain.
type Icon struct {
	raw []byte
}

func (Icon) decodeAt(b []byte, off int) (Icon, error) {
	raw, err := fixed(b, off, IconSize, "icon")
	if err != nil {
		return Icon{}, err
	}
	return Icon{raw: raw}, nil
}

// Chain is the next icon in the same bucket. InvalidOffset ends the chain.
func (i Icon) Chain() Offset[Icon] { return Offset[Icon](u32(i.raw, IconChainOffset)) }

func (i Icon) Name() Offset[CString] { return Offset[CString](u32(i.raw, IconNameOffset)) }

func (i Icon) ImageList() Offset[ImageList] {
	return Offset[ImageList](u32(i.raw, IconImageListOffset))
}
