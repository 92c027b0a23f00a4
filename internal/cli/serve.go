package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/quarterly-sales-report/internal/api"
	"github.com/vfg2006/quarterly-sales-report/internal/observability"
	"github.com/vfg2006/quarterly-sales-report/internal/scheduler"
	"github.com/vfg2006/quarterly-sales-report/internal/usecases/reporting"
)

type ServeCmd struct {
	cli *CLI
}

func (cli *CLI) newServeCmd() *cobra.Command {
	sc := &ServeCmd{cli: cli}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the latest quarterly report over HTTP and refresh it on a schedule",
		RunE:  sc.run,
	}

	cmd.Flags().String("host", "localhost", "Listen host")
	cmd.Flags().String("port", "8000", "Listen port")
	cmd.Flags().Bool("refresh", false, "Enable the scheduled report refresh")

	bindFlags(cli.viper, cmd, map[string]string{
		"host":                   "host",
		"port":                   "port",
		"report_refresh_enabled": "refresh",
	})

	return cmd
}

func (sc *ServeCmd) run(cmd *cobra.Command, args []string) error {
	cfg := sc.cli.config

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()

	service, err := newReportService(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up the report: %w", err)
	}
	service.WithMetrics(metrics)

	refreshService := scheduler.NewReportRefreshService(service, cfg)
	if err := refreshService.Start(ctx); err != nil {
		return err
	}

	// warm the cache so the first request does not pay for the generation
	if _, err := refreshService.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("initial report generation failed, it will be retried on demand")
	}

	server, err := api.New(cfg, refreshService, reporting.NewTextRenderer(cfg.Report.CurrencySymbol), metrics)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}
