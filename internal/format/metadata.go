package format

// MetaData carries the optional extras gtk-update-icon-cache copies from
// .icon files. Each field may be NullOffset.
type MetaData struct {
	raw []byte
}

func (MetaData) decodeAt(b []byte, off int) (MetaData, error) {
	raw, err := fixed(b, off, MetaDataSize, "meta data")
	if err != nil {
		return MetaData{}, err
	}
	return MetaData{raw: raw}, nil
}

func (m MetaData) EmbeddedRect() Offset[EmbeddedRect] {
	return Offset[EmbeddedRect](u32(m.raw, MetaDataEmbeddedRectOffset))
}

func (m MetaData) AttachPoints() Offset[AttachPointList] {
	return Offset[AttachPointList](u32(m.raw, MetaDataAttachPointListOffset))
}

func (m MetaData) DisplayNames() Offset[DisplayNameList] {
	return Offset[DisplayNameList](u32(m.raw, MetaDataDisplayNameListOffset))
}

// EmbeddedRect is the text area of an icon, in icon-design coordinates.
type EmbeddedRect struct {
	raw []byte
}

func (EmbeddedRect) decodeAt(b []byte, off int) (EmbeddedRect, error) {
	raw, err := fixed(b, off, EmbeddedRectSize, "embedded rect")
	if err != nil {
		return EmbeddedRect{}, err
	}
	return EmbeddedRect{raw: raw}, nil
}

func (r EmbeddedRect) X0() uint16 { return u16(r.raw, 0) }
func (r EmbeddedRect) Y0() uint16 { return u16(r.raw, 2) }
func (r EmbeddedRect) X1() uint16 { return u16(r.raw, 4) }
func (r EmbeddedRect) Y1() uint16 { return u16(r.raw, 6) }

// AttachPointList is n_attach_points (u32) followed by {x, y} u16 pairs.
type AttachPointList struct {
	raw []byte
}

func (AttachPointList) decodeAt(b []byte, off int) (AttachPointList, error) {
	raw, err := list(b, off, AttachPointSize, "attach point list")
	if err != nil {
		return AttachPointList{}, err
	}
	return AttachPointList{raw: raw}, nil
}

func (l AttachPointList) Len() uint32 { return listCount(l.raw) }

// At returns the coordinates of attach point i.
func (l AttachPointList) At(i uint32) (x, y uint16, ok bool) {
	e, ok := element(l.raw, i, AttachPointSize)
	if !ok {
		return 0, 0, false
	}
	return u16(e, 0), u16(e, 2), true
}

// DisplayNameList is n_display_names (u32) followed by {lang, name} string
// offset pairs.
type DisplayNameList struct {
	raw []byte
}

func (DisplayNameList) decodeAt(b []byte, off int) (DisplayNameList, error) {
	raw, err := list(b, off, DisplayNameSize, "display name list")
	if err != nil {
		return DisplayNameList{}, err
	}
	return DisplayNameList{raw: raw}, nil
}

func (l DisplayNameList) Len() uint32 { return listCount(l.raw) }

// At returns the language and name offsets of entry i.
func (l DisplayNameList) At(i uint32) (lang, name Offset[CString], ok bool) {
	e, ok := element(l.raw, i, DisplayNameSize)
	if !ok {
		return 0, 0, false
	}
	return Offset[CString](u32(e, 0)), Offset[CString](u32(e, 4)), true
}
