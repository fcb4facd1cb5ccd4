package evalmcp

import (
	"context"
	"os"
	"time"

	"styleval/internal/logging"
)

// WatchParent monitors for parent process death in a background goroutine
// and calls cancelFn when the parent PID changes (the spawning editor died
// or restarted). This keeps crashed editors from leaving zombie servers.
//
// It must NOT read from stdin — the MCP StdioTransport owns stdin
// exclusively; reading here would steal bytes and corrupt the JSON-RPC
// stream.
func WatchParent(ctx context.Context, cancelFn context.CancelFunc) {
	ppid := os.Getppid()
	logger := logging.New("evalmcp")
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(2 * time.Second):
				if os.Getppid() != ppid {
					logger.Warn("parent process died, shutting down", "was_pid", ppid)
					cancelFn()
					return
				}
			}
		}
	}()
}
