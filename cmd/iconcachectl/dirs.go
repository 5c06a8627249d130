package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDirsCmd())
}

func newDirsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dirs <cache>",
		Short: "List the theme directories indexed by the cache",
		Long: `The dirs command prints the cache's directory list. Image entries refer
to directories by their position in this list.

Example:
  iconcachectl dirs hicolor`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirs(args)
		},
	}
	return cmd
}

type dirEntry struct {
	Index int    `json:"index"`
	Path  string `json:"path"`
}

func runDirs(args []string) error {
	f, c, err := openCache(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	dirs := []dirEntry{}
	for i := range c.DirectoryCount() {
		d, ok := c.Directory(i)
		if !ok {
			logger.Warn("skipping undecodable directory", "index", i)
			continue
		}
		dirs = append(dirs, dirEntry{Index: i, Path: d})
	}

	if jsonOut {
		return printJSON(map[string]any{
			"directories": dirs,
			"count":       len(dirs),
		})
	}
	for _, d := range dirs {
		printInfo("%3d  %s\n", d.Index, d.Path)
	}
	return nil
}
