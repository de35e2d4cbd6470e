package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pkozlov/calcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleMinutes int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Serve the arcade over SSH. Every connecting client gets its own
calculator session; unlock state and scores are shared through the
server's database.

Examples:
  calcade serve
  calcade serve --ssh :2222
  calcade serve --ssh :2222 --host-key ./host_key`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().IntVar(&flagIdleMinutes, "idle-timeout", 30, "Idle timeout in minutes")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleMinutes) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	return server.ListenAndServe()
}
