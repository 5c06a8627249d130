package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/iconcache/internal/format"
	"github.com/joshuapare/iconcache/internal/testutil"
)

func TestInfoCommand(t *testing.T) {
	path := sampleCachePath(t)

	tests := []struct {
		name        string
		arg         string
		json        bool
		wantErr     bool
		wantContain []string
	}{
		{
			name: "cache file",
			arg:  path,
			wantContain: []string{
				"Version: 1.0",
				"Hash table: offset 12, 251 buckets",
				"Directory list: offset 35812, 59 directories",
				"Icons: 563",
			},
		},
		{
			name:        "theme directory",
			arg:         filepath.Dir(path),
			wantContain: []string{"Icons: 563"},
		},
		{
			name:        "json",
			arg:         path,
			json:        true,
			wantContain: []string{`"directory_list_offset": 35812`, `"icons": 563`},
		},
		{
			name:    "missing",
			arg:     filepath.Join(t.TempDir(), "nope.cache"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			jsonOut = tt.json

			output, err := captureOutput(t, func() error {
				return runInfo([]string{tt.arg})
			})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestInfoCommand_ThemeName(t *testing.T) {
	resetFlags()
	path := sampleCachePath(t)
	cfg.Themes.Roots = []string{filepath.Dir(filepath.Dir(path))}

	output, err := captureOutput(t, func() error {
		return runInfo([]string{"hicolor"})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{path, "Icons: 563"})
}

func TestLookupCommand(t *testing.T) {
	resetFlags()
	path := sampleCachePath(t)

	output, err := captureOutput(t, func() error {
		return runLookup([]string{path, "mpv"})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"Icon: mpv",
		"Images: 5",
		"[0] scalable/apps  svg",
		"[4] 48x48/apps  png",
	})
	assertNotContains(t, output, []string{"data"})

	_, err = captureOutput(t, func() error {
		return runLookup([]string{path, "missing-icon"})
	})
	require.ErrorContains(t, err, `icon "missing-icon" not found`)
}

func TestLookupCommand_MetaData(t *testing.T) {
	resetFlags()
	path := testutil.WriteTheme(t, testutil.Theme{
		Buckets:     5,
		Directories: []string{"48x48/apps"},
		Icons: []testutil.Icon{{
			Name: "player",
			Images: []testutil.Image{{
				Flags: format.HasSuffixPNG | format.HasIconFile,
				Data: &testutil.ImageData{Meta: &testutil.MetaData{
					Rect:         &[4]uint16{1, 2, 3, 4},
					DisplayNames: [][2]string{{"en", "Player"}, {"de", "Spieler"}},
				}},
			}},
		}},
	})

	lookupLang = "de"
	output, err := captureOutput(t, func() error {
		return runLookup([]string{path, "player"})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{
		"png|icon  data",
		"rect=(1,2)-(3,4)",
		"display_names=2",
		`name="Spieler"`,
	})

	jsonOut = true
	output, err = captureOutput(t, func() error {
		return runLookup([]string{path, "player"})
	})
	require.NoError(t, err)
	var res lookupResult
	require.NoError(t, json.Unmarshal([]byte(output), &res))
	require.Len(t, res.Images, 1)
	require.NotNil(t, res.Images[0].Meta)
	require.Equal(t, "Spieler", res.Images[0].Meta.DisplayName)
}

func TestLookupCommand_BadLang(t *testing.T) {
	resetFlags()
	lookupLang = "not a language"
	_, err := captureOutput(t, func() error {
		return runLookup([]string{sampleCachePath(t), "mpv"})
	})
	require.Error(t, err)
}

func TestListCommand(t *testing.T) {
	resetFlags()
	path := sampleCachePath(t)

	output, err := captureOutput(t, func() error {
		return runList([]string{path})
	})
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	require.Len(t, lines, testutil.SampleIconCount)
	require.Contains(t, lines, "mpv")
	require.Contains(t, lines, "app-562")
}

func TestListCommand_Bucket(t *testing.T) {
	resetFlags()
	path := sampleCachePath(t)
	bucket := format.IconHash([]byte("mpv")) % testutil.SampleBuckets
	listBucket = int64(bucket)
	jsonOut = true

	output, err := captureOutput(t, func() error {
		return runList([]string{path})
	})
	require.NoError(t, err)

	var res struct {
		Icons  []string `json:"icons"`
		Count  int      `json:"count"`
		Bucket int64    `json:"bucket"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &res))
	require.Contains(t, res.Icons, "mpv")
	require.Equal(t, len(res.Icons), res.Count)
	require.Equal(t, int64(bucket), res.Bucket)

	listBucket = testutil.SampleBuckets
	_, err = captureOutput(t, func() error {
		return runList([]string{path})
	})
	require.ErrorContains(t, err, "out of range")
}

func TestDirsCommand(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, func() error {
		return runDirs([]string{sampleCachePath(t)})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"  0  scalable/apps", "  1  16x16/apps"})
	require.Len(t, strings.Split(strings.TrimSpace(output), "\n"), testutil.SampleDirectoryCount)
}

func TestBucketCommand(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, func() error {
		return runBucket([]string{sampleCachePath(t), "mpv"})
	})
	require.NoError(t, err)
	bucket := format.IconHash([]byte("mpv")) % testutil.SampleBuckets
	assertContains(t, output, []string{
		"Hash: 108339",
		fmt.Sprintf("Bucket: %d of 251", bucket),
		"* mpv",
	})
}

func TestHashCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		buckets     uint32
		json        bool
		wantContain []string
	}{
		{
			name:        "plain",
			args:        []string{"mpv"},
			wantContain: []string{"mpv\t108339\n"},
		},
		{
			name:        "with buckets",
			args:        []string{"mpv", ""},
			buckets:     251,
			wantContain: []string{fmt.Sprintf("mpv\t108339\t%d\n", 108339%251), "\t0\t0\n"},
		},
		{
			name:        "json",
			args:        []string{"mpv"},
			json:        true,
			wantContain: []string{`"hash": 108339`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			hashBuckets = tt.buckets
			jsonOut = tt.json

			output, err := captureOutput(t, func() error {
				return runHash(tt.args)
			})
			require.NoError(t, err)
			if tt.json {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestVerifyCommand(t *testing.T) {
	resetFlags()
	output, err := captureOutput(t, func() error {
		return runVerify([]string{sampleCachePath(t)})
	})
	require.NoError(t, err)
	assertContains(t, output, []string{"Icon records: 563 (563 decodable)", "No problems found"})
}

func TestVerifyCommand_Corrupt(t *testing.T) {
	resetFlags()
	theme := testutil.Theme{
		Buckets:     1,
		Directories: []string{"scalable/apps"},
		Icons: []testutil.Icon{
			{Name: "ok", Images: []testutil.Image{{Dir: 0}}},
			{Name: "bad-dir", Images: []testutil.Image{{Dir: 3}}},
		},
	}
	path := testutil.WriteTheme(t, theme)

	output, err := captureOutput(t, func() error {
		return runVerify([]string{path})
	})
	require.ErrorContains(t, err, "1 issue(s)")
	assertContains(t, output, []string{"Images: 2 (1 bad)", "✗"})
}

func TestSetup_LogLevelFromConfig(t *testing.T) {
	resetFlags()
	configPath = filepath.Join(t.TempDir(), "config")
	logLevel = "loud"
	defer func() { logLevel = "" }()

	require.Error(t, setup())

	logLevel = "warn"
	require.NoError(t, setup())
	require.NotNil(t, cfg)
}
