package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"toytracker/internal/toy"
)

// Source yields the current snapshot. It is called once per tool call so
// every answer reflects the file as it is now.
type Source interface {
	Records(ctx context.Context) ([]toy.Record, error)
}

type Server struct {
	source Source
	mcp    *sdk.Server
}

func NewServer(source Source, version string) *Server {
	s := &Server{
		source: source,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "toytracker",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
