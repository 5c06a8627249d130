package testutil

// SampleCachePath is an optional real cache generated by gtk-update-icon-cache
// from a hicolor theme, relative to the repository root. Tests that need it
// skip when it is absent.
const SampleCachePath = "testdata/icon-theme.cache"
