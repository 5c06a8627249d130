package cache_test

import (
	"fmt"

	"github.com/joshuapare/iconcache/cache"
	"github.com/joshuapare/iconcache/internal/testutil"
)

func ExampleCache_Lookup() {
	c, err := cache.Parse(testutil.SampleCache())
	if err != nil {
		fmt.Println(err)
		return
	}
	icon, ok := c.Lookup("mpv")
	if !ok {
		return
	}
	for im := range icon.Images().All() {
		fmt.Println(im.Directory(), im.Flags())
	}
	// Output:
	// scalable/apps svg
	// 16x16/apps png
	// 22x22/apps png
	// 32x32/apps png
	// 48x48/apps png
}

func ExampleParse_error() {
	_, err := cache.Parse([]byte{0, 2, 0, 0, 0, 0, 0, 12, 0, 0, 0, 12})
	kind, _ := cache.KindOf(err)
	fmt.Println(kind)
	// Output:
	// decode
}
