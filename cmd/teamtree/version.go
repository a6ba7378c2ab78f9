package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/teamtree"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of teamtree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "teamtree version %s\n", strings.TrimSpace(teamtree.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
