package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the memscrub version.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("memscrub %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
	},
}
