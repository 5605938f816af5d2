package main

import (
	"exposure/internal/config"
	"exposure/internal/exposure"
	"exposure/pkg/domain"
	"exposure/pkg/logger"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// probeCommand constructs the 'probe' subcommand that checks a domain against
// the pattern catalog from this machine and prints what it finds. Nothing is
// stored and no events are published.
func probeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <domain>",
		Short: "Probes a domain for exposed paths without recording a scan",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if timeout, _ := cmd.Flags().GetDuration("timeout"); timeout > 0 {
				cfg.Prober.Timeout = timeout
			}

			engine, closeProber := newEngine(cfg)
			defer closeProber()

			findings, err := engine.Scan(ctx, args[0])
			if err != nil {
				logger.Fatal(ctx, "could not probe domain", zap.String("domain", args[0]), zap.Error(err))
			}

			exposure.SortFindings(findings)
			if err := printFindings(cmd.OutOrStdout(), findings); err != nil {
				logger.Fatal(ctx, "could not print findings", zap.Error(err))
			}
		},
	}

	cmd.Flags().Duration("timeout", 0, "Per-probe timeout (defaults to the configured prober timeout)")

	return cmd
}

func printFindings(w io.Writer, findings []domain.Finding) error {
	if len(findings) == 0 {
		_, err := fmt.Fprintln(w, "no exposed paths found")

		return err //nolint: wrapcheck
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SEVERITY\tSTATUS\tURL\tDESCRIPTION")
	for _, f := range findings {
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", f.Severity, f.StatusCode, f.URL, f.Description)
	}

	return tw.Flush() //nolint: wrapcheck
}
