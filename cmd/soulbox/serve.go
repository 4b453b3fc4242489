package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kazarin/soulbox/internal/config"
	"github.com/kazarin/soulbox/internal/encounter"
	"github.com/kazarin/soulbox/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagServeEnc    string
	flagServeConfig string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the soulbox SSH server",
	Long: `Start an SSH server that lets users connect and fight battles.

Each SSH connection gets its own battle session against the configured
encounter. Results are stored per-server in one shared history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.soulbox/host_key

Examples:
  soulbox serve                          # Serve froggit on :23235
  soulbox serve --ssh :2222              # Listen on port 2222
  soulbox serve --encounter bonehead     # Serve a different opponent
  soulbox serve --host-key ./my_key      # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagServeEnc, "encounter", defaults.EncounterID, "Encounter ID to serve")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom battle config YAML")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	enc, err := encounter.NewLoader("").LoadByID(flagServeEnc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown encounter %q\n", flagServeEnc)
		os.Exit(1)
	}

	battleCfg, err := config.LoadBattle(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.EncounterID = flagServeEnc
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, battleCfg, enc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting soulbox SSH server on %s (encounter: %s)\n", cfg.Address, enc.ID)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
