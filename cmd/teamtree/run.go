package main

import (
	"os"

	"github.com/aretw0/teamtree/internal/cli"
	"github.com/aretw0/teamtree/internal/presentation/tui"
	"github.com/aretw0/teamtree/pkg/plan"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run <plan.yaml|plan.json>",
	Short: "Replay a scripted plan of insertions",
	Long: `Reads a plan (root plus ordered inserts) and applies each step, printing one
message per step and the final hierarchy. With --save the steps are applied to
the chart selected by --chart; otherwise they run on a throwaway tree.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := plan.Load(args[0])
		if err != nil {
			return err
		}
		return runPlan(cmd, p)
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build the sample team and print it",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(cmd.OutOrStdout())
		}
		return runPlan(cmd, plan.Demo())
	},
}

func runPlan(cmd *cobra.Command, p *plan.Plan) error {
	svc, err := openService(cmd)
	if err != nil {
		return err
	}
	defer svc.Close()

	chart := ""
	if save, _ := cmd.Flags().GetBool("save"); save {
		chart = chartID(cmd)
	}
	opts := showOptions(cmd)
	if p.Name != "" && chart == "" {
		opts.Title = p.Name
	}
	return cli.RunPlan(cmd.Context(), svc, cmd.OutOrStdout(), chart, p, opts)
}

func init() {
	for _, c := range []*cobra.Command{runCmd, demoCmd} {
		c.Flags().Bool("save", false, "Apply the plan to the stored chart")
		c.Flags().Bool("pretty", false, "Render as styled markdown (default when stdout is a terminal)")
		rootCmd.AddCommand(c)
	}
}
