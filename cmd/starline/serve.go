package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/starline/internal/platform/tui"
)

var (
	flagSSHAddr string
	flagHostKey string
	flagSSHPack string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the starline SSH server",
	Long: `Start an SSH server that lets users connect and play in their own
terminal. Every connection gets its own game; completions are recorded
per SSH user in the shared records database.

Host key handling:
  - --host-key or server.host_key from the config
  - Otherwise, auto-generates a key at ~/.starline/host_key

Examples:
  starline serve                        # Listen on server.addr from config
  starline serve --addr :2222           # Listen on port 2222
  starline serve --pack builtin         # Serve a registered pack

Users can connect with:
  ssh localhost -p 2222`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "addr", "", "SSH server address (host:port, empty = config value)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (empty = config value)")
	serveCmd.Flags().StringVar(&flagSSHPack, "pack", "", "Registered pack to serve (empty = config value)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = cfg.Server.Addr
	srvCfg.HostKeyPath = cfg.Server.HostKey
	srvCfg.Pack = cfg.Gameplay.Pack
	srvCfg.IdleTimeout = cfg.Server.IdleTimeout
	srvCfg.MaxTimeout = cfg.Server.MaxTimeout
	srvCfg.FPS = cfg.Display.FPS
	srvCfg.CellAspect = cfg.Display.CellAspect
	srvCfg.FrameBudget = uint32(cfg.Playback.FrameBudget)
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagSSHPack != "" {
		srvCfg.Pack = flagSSHPack
	}

	store := openStore(cfg.Paths.Database, logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(srvCfg, store, logger)
	if err != nil {
		return err
	}

	logger.Info("connect with ssh", "addr", server.Addr())
	return server.ListenAndServe(cmd.Context())
}
