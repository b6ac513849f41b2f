package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aditya-arolkar-swe/rusty-snake/internal/config"
	"github.com/aditya-arolkar-swe/rusty-snake/internal/game"
	"github.com/aditya-arolkar-swe/rusty-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an SSH server for remote play",
	Long: `Start an SSH server that lets players connect and play remotely.

Each connection gets its own game session with a fresh random seed.
Scores from all sessions land in the shared scores database.

Examples:
  rusty-snake serve
  rusty-snake serve --ssh :2222
  rusty-snake serve --ssh :2222 --host-key ./host_key

Connect with:
  ssh -p 23234 localhost`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle connection timeout in minutes")
	serveCmd.Flags().StringVar(&flagServeConfig, "config", "", "Path to custom game config YAML")
}

func runServe(cmd *cobra.Command, args []string) {
	snakeCfg, err := config.LoadSnake(flagServeConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = game.Config{
		GridWidth:       snakeCfg.Grid.Width,
		GridHeight:      snakeCfg.Grid.Height,
		RefreshInterval: time.Duration(snakeCfg.Timing.RefreshRateMS) * time.Millisecond,
		Reward:          snakeCfg.Rules.FoodReward,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating SSH server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rusty Snake SSH server listening on %s\n", server.Addr())
	fmt.Printf("Connect with: ssh -p %s localhost\n", portOf(server.Addr()))
	fmt.Println("Press Ctrl+C to stop.")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf extracts the port from a host:port address for the connect hint.
func portOf(addr string) string {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[i+1:]
		}
	}
	return addr
}
