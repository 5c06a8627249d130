package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/iconcache/internal/format"
)

func init() {
	rootCmd.AddCommand(newBucketCmd())
}

func newBucketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bucket <cache> <name>",
		Short: "Show where a name hashes and what its bucket holds",
		Long: `The bucket command computes the icon hash of a name, the bucket it
selects in this cache, and lists the chain stored there. Entries equal to
the name are marked with '*'.

Example:
  iconcachectl bucket hicolor mpv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBucket(args)
		},
	}
	return cmd
}

type bucketResult struct {
	Name   string   `json:"name"`
	Hash   uint32   `json:"hash"`
	Bucket uint32   `json:"bucket"`
	Chain  []string `json:"chain"`
	Found  bool     `json:"found"`
}

func runBucket(args []string) error {
	f, c, err := openCache(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	name := args[1]
	res := bucketResult{
		Name:   name,
		Hash:   format.IconHash([]byte(name)),
		Bucket: c.Bucket(name),
	}
	res.Chain = chainNames(c, res.Bucket)
	for _, n := range res.Chain {
		if n == name {
			res.Found = true
			break
		}
	}

	if jsonOut {
		return printJSON(res)
	}

	printInfo("\nName: %s\n", res.Name)
	printInfo("  Hash: %d (0x%08x)\n", res.Hash, res.Hash)
	printInfo("  Bucket: %d of %d\n", res.Bucket, c.BucketCount())
	printInfo("  Chain (%d):\n", len(res.Chain))
	for _, n := range res.Chain {
		mark := " "
		if n == name {
			mark = "*"
		}
		printInfo("   %s %s\n", mark, n)
	}
	return nil
}
