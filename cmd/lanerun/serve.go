package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lanerun/internal/config"
	"github.com/vovakirdan/lanerun/internal/logging"
	"github.com/vovakirdan/lanerun/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lane runner SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. The high score, image references
and run history are shared by everyone on the server; runs are recorded
under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lanerun/host_key

Examples:
  lanerun serve                           # Listen on :23234 with auto-generated key
  lanerun serve --ssh :2222               # Listen on port 2222
  lanerun serve --host-key ./my_host_key  # Use specific host key
  lanerun serve --db ./runs.db            # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", def.HostKeyPath, "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(def.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if err := serve(mustLoadConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func serve(cfg config.Config) error {
	logger, err := logging.New(os.Stderr, "lanerun-ssh", flagLogLevel)
	if err != nil {
		return err
	}

	prof, store := openStores(logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(serverConfig(), cfg, prof, store, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting lane runner SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// serverConfig builds the SSH server config from the serve flags.
func serverConfig() tui.SSHServerConfig {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Seed = flagSeed
	return cfg
}
