package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/joshuapare/iconcache/cache"
)

var lookupLang string

func init() {
	cmd := newLookupCmd()
	cmd.Flags().StringVar(&lookupLang, "lang", "", "Show the display name best matching this language")
	rootCmd.AddCommand(cmd)
}

func newLookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <cache> <name>",
		Short: "Show the images a theme provides for an icon",
		Long: `The lookup command finds an icon by name and lists each of its
images: the theme directory, the file suffixes present, and any embedded
image data or .icon metadata.

Example:
  iconcachectl lookup hicolor mpv
  iconcachectl lookup hicolor mpv --lang de --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(args)
		},
	}
	return cmd
}

type imageResult struct {
	Index             int       `json:"index"`
	Directory         string    `json:"directory"`
	Flags             string    `json:"flags"`
	Suffixes          []string  `json:"suffixes"`
	HasData           bool      `json:"has_data"`
	PixelTypeOffset   uint32    `json:"pixel_type_offset,omitempty"`
	PixelLengthOffset uint32    `json:"pixel_length_offset,omitempty"`
	Meta              *metaInfo `json:"meta,omitempty"`
}

type metaInfo struct {
	Rect         *cache.Rect         `json:"embedded_rect,omitempty"`
	AttachPoints []cache.Point       `json:"attach_points,omitempty"`
	DisplayNames []cache.DisplayName `json:"display_names,omitempty"`
	DisplayName  string              `json:"display_name,omitempty"`
}

type lookupResult struct {
	Name   string        `json:"name"`
	Offset uint32        `json:"offset"`
	Bucket uint32        `json:"bucket"`
	Images []imageResult `json:"images"`
}

func runLookup(args []string) error {
	f, c, err := openCache(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	var prefs []language.Tag
	if lookupLang != "" {
		tag, err := language.Parse(lookupLang)
		if err != nil {
			return fmt.Errorf("invalid --lang: %w", err)
		}
		prefs = append(prefs, tag)
	}

	name := args[1]
	icon, ok := c.Lookup(name)
	if !ok {
		return fmt.Errorf("icon %q not found", name)
	}
	logger.Debug("icon found", "name", name, "offset", icon.Offset())

	res := lookupResult{
		Name:   icon.Name(),
		Offset: icon.Offset(),
		Bucket: c.Bucket(name),
	}
	images := icon.Images()
	for i := range images.Len() {
		im, ok := images.Image(i)
		if !ok {
			logger.Warn("skipping undecodable image", "icon", name, "index", i)
			continue
		}
		res.Images = append(res.Images, describeImage(i, im, prefs))
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("\nIcon: %s\n", res.Name)
	printInfo("  Offset: %d (bucket %d)\n", res.Offset, res.Bucket)
	printInfo("  Images: %d\n", len(res.Images))
	for _, im := range res.Images {
		printInfo("  [%d] %s  %s", im.Index, im.Directory, im.Flags)
		if im.HasData {
			printInfo("  data")
		}
		printInfo("\n")
		if im.Meta != nil {
			printInfo("      %s\n", im.Meta.summary())
		}
	}
	return nil
}

func describeImage(i int, im cache.Image, prefs []language.Tag) imageResult {
	res := imageResult{
		Index:     i,
		Directory: im.Directory(),
		Flags:     im.Flags().String(),
		Suffixes:  im.Flags().Suffixes(),
		HasData:   im.HasData(),
	}
	data, ok := im.Data()
	if !ok {
		return res
	}
	res.PixelTypeOffset = data.PixelDataType()
	res.PixelLengthOffset = data.PixelDataLength()

	meta, ok := data.MetaData()
	if !ok {
		return res
	}
	info := &metaInfo{}
	if r, ok := meta.EmbeddedRect(); ok {
		info.Rect = &r
	}
	if aps, ok := meta.AttachPoints(); ok {
		for p := range aps.All() {
			info.AttachPoints = append(info.AttachPoints, p)
		}
	}
	if dns, ok := meta.DisplayNames(); ok {
		for n := range dns.All() {
			info.DisplayNames = append(info.DisplayNames, n)
		}
		if best, ok := dns.Match(prefs...); ok {
			info.DisplayName = best.Name
		}
	}
	res.Meta = info
	return res
}

func (m *metaInfo) summary() string {
	var parts []string
	if m.Rect != nil {
		parts = append(parts, fmt.Sprintf("rect=(%d,%d)-(%d,%d)", m.Rect.X0, m.Rect.Y0, m.Rect.X1, m.Rect.Y1))
	}
	if len(m.AttachPoints) > 0 {
		parts = append(parts, fmt.Sprintf("attach_points=%d", len(m.AttachPoints)))
	}
	if len(m.DisplayNames) > 0 {
		parts = append(parts, fmt.Sprintf("display_names=%d", len(m.DisplayNames)))
	}
	if m.DisplayName != "" {
		parts = append(parts, fmt.Sprintf("name=%q", m.DisplayName))
	}
	if len(parts) == 0 {
		return "metadata: empty"
	}
	return "metadata: " + strings.Join(parts, " ")
}
