package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/moeloubani/language-transfer-hub-sub000/internal/server"
)

var (
	servePort   int
	serveReload bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the comparison web server",
	Long:  `Starts the Language Transfer Hub web server with the comparison UI and the JSON API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Port = servePort
		}
		if cmd.Flags().Changed("reload") {
			cfg.LiveReload = serveReload
		}

		reg, err := loadRegistry(cfg)
		if err != nil {
			return err
		}

		srv, err := server.New(cfg, reg)
		if err != nil {
			return fmt.Errorf("creating server: %w", err)
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "langhub v%s serving %d comparison pairs on port %d\n", Version, reg.Len(), cfg.Port)
		if cfg.LiveReload && cfg.DataDir != "" {
			fmt.Fprintf(os.Stderr, "  Watching %s for dataset changes\n", cfg.DataDir)
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
	serveCmd.Flags().BoolVar(&serveReload, "reload", false, "reload the dataset and refresh open pages when data files change")
	rootCmd.AddCommand(serveCmd)
}
