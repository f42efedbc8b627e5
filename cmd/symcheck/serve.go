package main

import (
	"fmt"
	"net"

	symhttp "github.com/fwojciec/symcheck/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	l, err := net.Listen("tcp", c.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", c.Addr, err)
	}

	limiter := symhttp.NewClientLimiter(c.Rate, c.Burst)
	srv := symhttp.NewServer(deps.Analyzer, limiter)

	deps.Logger.Info("serving analysis endpoint", "addr", l.Addr().String(), "path", symhttp.AnalyzePath)
	return srv.Serve(deps.Ctx, l)
}
