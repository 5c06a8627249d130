package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/iconcache/cache"
)

var listBucket int64

func init() {
	cmd := newListCmd()
	cmd.Flags().Int64Var(&listBucket, "bucket", -1, "Only list the chain of this hash bucket")
	rootCmd.AddCommand(cmd)
}

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <cache>",
		Short: "List icon names",
		Long: `The list command prints the name of every icon in the cache, in hash
table order. With --bucket only the icons chained from that bucket are shown.

Example:
  iconcachectl list hicolor
  iconcachectl list hicolor --bucket 42 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(args)
		},
	}
	return cmd
}

func runList(args []string) error {
	f, c, err := openCache(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	seq := c.All()
	if listBucket >= 0 {
		if listBucket >= int64(c.BucketCount()) {
			return fmt.Errorf("bucket %d out of range (cache has %d buckets)", listBucket, c.BucketCount())
		}
		seq = c.Chain(uint32(listBucket))
	}

	names := []string{}
	for icon := range seq {
		names = append(names, icon.Name())
	}

	if jsonOut {
		result := map[string]any{
			"icons": names,
			"count": len(names),
		}
		if listBucket >= 0 {
			result["bucket"] = listBucket
		}
		return printJSON(result)
	}

	for _, name := range names {
		printInfo("%s\n", name)
	}
	printVerbose("\n%d icon(s)\n", len(names))
	return nil
}

// chainNames collects the names of bucket i in chain order.
func chainNames(c *cache.Cache, i uint32) []string {
	names := []string{}
	for icon := range c.Chain(i) {
		names = append(names, icon.Name())
	}
	return names
}
