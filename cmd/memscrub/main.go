package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "memscrub",
	Short: "Memory-integrity stress tester built on a checksummed block copy.",
	Long: `memscrub fills memory regions with test patterns, copies them through
a checksumming copy primitive and re-reads the destination; any checksum
miscompare is a detected hardware memory fault and is logged and dumped.`,
}

func main() {
	rootCmd.AddCommand(runCmd, versionCmd)
	// Exit only from here, after every RunE deferred cleanup has run.
	os.Exit(exitCode(rootCmd.Execute()))
}

// exitCode maps the command outcome to the process exit status.
func exitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
