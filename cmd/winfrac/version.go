package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/winfrac-dev/winfrac"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of winfrac",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("winfrac version %s\n", winfrac.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
