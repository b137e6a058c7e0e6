package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/sofmeright/badgen/src/server"
)

var (
	serveAddr    string
	serveLogFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve badges over HTTP",
	Long: `Serve badges over HTTP.

GET /badge/{status} and /badge/{label}/{status} render SVG badges, with
style, color, label-color, precision and approx query parameters.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default: from config, or :8080)")
	serveCmd.Flags().StringVar(&serveLogFile, "log-file", "", "rotated JSON access log (default: text to stderr)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	sc := cfg.Serve
	if serveAddr != "" {
		sc.Addr = serveAddr
	}
	if serveLogFile != "" {
		sc.LogFile = serveLogFile
	}
	if sc.Addr == "" {
		sc.Addr = ":8080"
	}

	srv, err := server.New(sc)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("  serving badges on %s\n", sc.Addr)
	return srv.Run(ctx)
}
