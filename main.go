package main

import (
	"github.com/fqdbg/fixprint/cmd"
	"github.com/spf13/cobra"
	"os"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "fixprint [subcommand]",
	Short:        "fixprint\n render fixpoint verification queries as legible text",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.PrettifyCmd)
}
