package main

import (
	"github.com/cottand/ilec/cmd"
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
	Use:          "ilec [subcommand]",
	Short:        "ilec checks the types of programs before they are compiled",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cmd.EnvCmd)
	rootCmd.AddCommand(cmd.RuntimeCmd)
}
