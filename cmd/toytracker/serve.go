package main

import (
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"toytracker/internal/ingest"
	"toytracker/internal/mcp"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server over stdio",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := cfg.SavedVariablesPath()
	if err != nil {
		return err
	}

	log.WithField("source", path).Info("serving MCP over stdio")
	server := mcp.NewServer(ingest.FileSource{Path: path}, version)
	return server.Run(cmd.Context(), &sdk.StdioTransport{})
}
