package main

import (
	"os"

	"github.com/aretw0/teamtree/internal/cli"
	"github.com/aretw0/teamtree/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init <team-lead>",
	Short: "Create a chart with its team lead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()
		return cli.Init(cmd.Context(), svc, cmd.OutOrStdout(), chartID(cmd), args[0])
	},
}

var addCmd = &cobra.Command{
	Use:   "add <manager> <employee> <left|right>",
	Short: "Attach an employee under a manager",
	Long: `Finds the first employee named <manager> (pre-order: manager, left subtree,
right subtree) and attaches <employee> on the given side. Occupied slots are
never overwritten.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()
		return cli.Add(cmd.Context(), svc, cmd.OutOrStdout(), chartID(cmd), args[0], args[1], args[2])
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the chart hierarchy",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()
		return cli.Show(cmd.Context(), svc, cmd.OutOrStdout(), chartID(cmd), showOptions(cmd))
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored charts",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()
		return cli.List(cmd.Context(), svc, cmd.OutOrStdout())
	},
}

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the chart as a Mermaid diagram",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService(cmd)
		if err != nil {
			return err
		}
		defer svc.Close()
		highlight, _ := cmd.Flags().GetStringSlice("highlight")
		return cli.Graph(cmd.Context(), svc, cmd.OutOrStdout(), chartID(cmd), highlight)
	},
}

// showOptions enables pretty output when asked for, or by default on a terminal.
func showOptions(cmd *cobra.Command) cli.ShowOptions {
	pretty := tui.IsTerminal(os.Stdout)
	if cmd.Flags().Changed("pretty") {
		pretty, _ = cmd.Flags().GetBool("pretty")
	}
	return cli.ShowOptions{Pretty: pretty, Title: chartID(cmd)}
}

func init() {
	showCmd.Flags().Bool("pretty", false, "Render as styled markdown (default when stdout is a terminal)")
	graphCmd.Flags().StringSlice("highlight", nil, "Employees to highlight")

	rootCmd.AddCommand(initCmd, addCmd, showCmd, listCmd, graphCmd)
}
