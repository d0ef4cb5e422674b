package main

import (
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/games/conway"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagAllowSaves  bool
	serveFlags      boardFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server where every connection gets its own session with
the mode menu. All sessions share the database, so saved boards and the
runs board are common to every user. Saving from the game is disabled
unless --allow-saves is set.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.life/host_key

Examples:
  life serve                           # Listen on :23235
  life serve --ssh :2222               # Listen on port 2222
  life serve --speed fast --width 60   # Session defaults
  life serve --db ./life.db            # Use a specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagAllowSaves, "allow-saves", false, "Let remote users save boards")
	serveCmd.Flags().IntVar(&serveFlags.width, "width", 0, "Board width (default from config)")
	serveCmd.Flags().IntVar(&serveFlags.height, "height", 0, "Board height (default from config)")
	serveCmd.Flags().StringVar(&serveFlags.speed, "speed", "", "Speed preset: slow, normal, fast, turbo")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "life-ssh",
	})

	cfg := loadConfig(serveFlags)

	sshCfg := tui.DefaultSSHServerConfig()
	sshCfg.Address = flagSSHAddr
	sshCfg.HostKeyPath = flagHostKey
	sshCfg.DBPath = flagDBPath
	sshCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	sshCfg.TickRate = flagFPS
	sshCfg.Palette = tui.PaletteFromConfig(cfg.Style)

	server, err := tui.NewSSHServer(sshCfg, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	settings := conway.Settings{Config: cfg}
	if store := server.Store(); flagAllowSaves && store != nil {
		settings.Saver = store
	}
	conway.Configure(settings)

	_, port, err := net.SplitHostPort(server.Addr())
	if err != nil {
		port = server.Addr()
	}
	logger.Info("connect with", "command", "ssh localhost -p "+port)
	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
