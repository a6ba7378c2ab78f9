package main

import (
	"log"
	"os"

	"github.com/aretw0/teamtree/internal/cli"
	"github.com/aretw0/teamtree/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts TeamTree as an MCP Server over Standard Input/Output, so agents can
create charts, add reports and render hierarchies as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logger, err := cli.OpenService(options(cmd))
		if err != nil {
			return err
		}
		defer svc.Close()

		// Stdout carries JSON-RPC.
		log.SetOutput(os.Stderr)

		srv := mcp.NewServer(svc)
		logger.Info("starting TeamTree MCP Server (stdio)")
		if err := srv.ServeStdio(); err != nil {
			logger.Error("MCP Server execution failed", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
