package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify <cache>",
		Short: "Walk every record and report what fails to decode",
		Long: `The verify command walks all hash buckets, icon chains, image lists,
image data and directory entries and reports records that are missing,
truncated or malformed, as well as broken chains and chains longer than the hop bound. It exits with
an error if any problem is found.

Example:
  iconcachectl verify hicolor
  iconcachectl verify hicolor --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(args)
		},
	}
	return cmd
}

func runVerify(args []string) error {
	f, c, err := openCache(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	r := c.Verify()
	logger.Debug("verify finished", "records", r.Records, "issues", len(r.Issues))

	if jsonOut {
		if err := printJSON(r); err != nil {
			return err
		}
	} else {
		printInfo("\nVerification of %s:\n", f.Path())
		printInfo("  Buckets: %d (%d empty, longest chain %d)\n", r.Buckets, r.EmptyBuckets, r.LongestChain)
		printInfo("  Icon records: %d (%d decodable)\n", r.Records, r.Icons)
		printInfo("  Images: %d (%d bad)\n", r.Images, r.BadImages)
		printInfo("  Image data: %d (%d bad), metadata: %d (%d bad)\n",
			r.ImageData, r.BadImageData, r.MetaData, r.BadMetaData)
		printInfo("  Directories: %d (%d bad)\n", r.Directories, r.BadDirectories)
		if r.BrokenChains > 0 || r.OverlongChains > 0 {
			printInfo("  Chains: %d broken, %d overlong\n", r.BrokenChains, r.OverlongChains)
		}
		for _, issue := range r.Issues {
			printInfo("  ✗ 0x%08x %s: %s\n", issue.Offset, issue.Structure, issue.Message)
		}
		if r.OK() {
			printInfo("  ✓ No problems found\n")
		}
	}

	if !r.OK() {
		return fmt.Errorf("verification found %d issue(s)", len(r.Issues))
	}
	return nil
}
