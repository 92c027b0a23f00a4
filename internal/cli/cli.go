package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vfg2006/quarterly-sales-report/internal/config"
	"github.com/vfg2006/quarterly-sales-report/pkg/log"
)

// CLI is the salesreport command line
type CLI struct {
	viper   *viper.Viper
	output  io.Writer
	rootCmd *cobra.Command
	config  *config.Config
}

// Options configure the CLI
type Options struct {
	Output io.Writer
	// Viper holds configuration and bound flags. Defaults to the global instance.
	Viper *viper.Viper
}

func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Viper == nil {
		opts.Viper = viper.GetViper()
	}

	cli := &CLI{
		viper:  opts.Viper,
		output: opts.Output,
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args, used by tests
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "salesreport",
		Short:         "Quarterly sales report generator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewConfigWith(cli.viper)
			if err != nil {
				return err
			}
			log.Setup(cfg.App.LogLevel)
			cli.config = cfg
			return nil
		},
	}

	cmd.SetOut(cli.output)

	cmd.AddCommand(cli.newGenerateCmd())
	cmd.AddCommand(cli.newServeCmd())

	return cmd
}
