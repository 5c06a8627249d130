package testutil

import (
	"fmt"

	"github.com/joshuapare/iconcache/internal/format"
)

// Sample fixture shape, mirroring a hicolor cache produced by
// gtk-update-icon-cache on a desktop install.
const (
	SampleBuckets             = 251
	SampleDirectoryCount      = 59
	SampleIconCount           = 563
	SampleDirectoryListOffset = 35812
	SampleHashOffset          = format.HeaderSize
)

var sampleSizes = []string{
	"16x16", "22x22", "24x24", "32x32", "36x36", "48x48", "64x64",
	"72x72", "96x96", "128x128", "192x192", "256x256", "512x512",
}

var sampleContexts = []string{"apps", "actions", "categories", "devices", "mimetypes"}

// SampleDirectories returns the 59 directories of the sample theme.
// "scalable/apps" comes first.
func SampleDirectories() []string {
	dirs := []string{"scalable/apps"}
	for _, ctx := range sampleContexts {
		for _, size := range sampleSizes {
			if len(dirs) == SampleDirectoryCount {
				return dirs
			}
			dirs = append(dirs, size+"/"+ctx)
		}
	}
	return dirs
}

// SampleTheme returns the sample fixture: 563 icons over 251 buckets and 59
// directories, with "mpv" carrying five images whose first is an SVG in
// scalable/apps without embedded data.
func SampleTheme() Theme {
	icons := make([]Icon, 0, SampleIconCount)
	icons = append(icons, Icon{
		Name: "mpv",
		Images: []Image{
			{Dir: 0, Flags: format.HasSuffixSVG},
			{Dir: 1, Flags: format.HasSuffixPNG},
			{Dir: 2, Flags: format.HasSuffixPNG},
			{Dir: 4, Flags: format.HasSuffixPNG},
			{Dir: 6, Flags: format.HasSuffixPNG},
		},
	})
	for i := 1; i < SampleIconCount; i++ {
		dir := uint16(i % SampleDirectoryCount)
		flags := format.HasSuffixPNG
		if dir == 0 {
			flags = format.HasSuffixSVG
		}
		icons = append(icons, Icon{
			Name:   fmt.Sprintf("app-%03d", i),
			Images: []Image{{Dir: dir, Flags: flags}},
		})
	}
	return Theme{
		Buckets:             SampleBuckets,
		Directories:         SampleDirectories(),
		Icons:               icons,
		DirectoryListOffset: SampleDirectoryListOffset,
	}
}

// SampleCache builds the sample fixture.
func SampleCache() []byte {
	b, _ := MustBuild(SampleTheme())
	return b
}
