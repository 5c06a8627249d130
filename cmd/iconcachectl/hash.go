package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/iconcache/internal/format"
)

var hashBuckets uint32

func init() {
	cmd := newHashCmd()
	cmd.Flags().Uint32Var(&hashBuckets, "buckets", 0, "Also print the bucket index for this many buckets")
	rootCmd.AddCommand(cmd)
}

func newHashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash <name>...",
		Short: "Print the icon hash of names",
		Long: `The hash command prints the hash gtk-update-icon-cache uses to place
icon names in buckets. It does not read a cache.

Example:
  iconcachectl hash mpv firefox
  iconcachectl hash mpv --buckets 251`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHash(args)
		},
	}
	return cmd
}

type hashResult struct {
	Name   string  `json:"name"`
	Hash   uint32  `json:"hash"`
	Bucket *uint32 `json:"bucket,omitempty"`
}

func runHash(args []string) error {
	results := make([]hashResult, 0, len(args))
	for _, name := range args {
		r := hashResult{Name: name, Hash: format.IconHash([]byte(name))}
		if hashBuckets > 0 {
			b := r.Hash % hashBuckets
			r.Bucket = &b
		}
		results = append(results, r)
	}

	if jsonOut {
		return printJSON(results)
	}
	for _, r := range results {
		if r.Bucket != nil {
			printInfo("%s\t%d\t%d\n", r.Name, r.Hash, *r.Bucket)
			continue
		}
		printInfo("%s\t%d\n", r.Name, r.Hash)
	}
	return nil
}
