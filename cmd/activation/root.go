package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tirasundara/activation-service/internal/chain"
	"github.com/tirasundara/activation-service/internal/config"
	"github.com/tirasundara/activation-service/internal/domain"
	"github.com/tirasundara/activation-service/internal/logging"
	"github.com/tirasundara/activation-service/internal/report"
	"github.com/tirasundara/activation-service/internal/repository"
	"github.com/tirasundara/activation-service/internal/service"
	"github.com/tirasundara/activation-service/internal/strategy"
)

// cliOptions holds the persistent flags shared by every command
type cliOptions struct {
	configPath   string
	accountsFile string
	verbose      bool
	reportFormat string
	reportOutput string
}

// app is everything a command needs once flags and config are resolved
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer

	// set when one invocation runs both variants, so reports get per-mode file names
	perMode bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:   "activation",
		Short: "Dispatch account activations through a handler chain or a strategy context",
		Long: `activation runs a batch of accounts through one or both dispatch variants:

  chain     each account is handed to the head of a chain of handlers; the
            handler that claims the account's action activates it
  strategy  the caller picks a strategy per account and a context delegates to it

One line is printed per activated account. Accounts nobody claims are skipped.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(opts, stdout, stderr, func(a *app) error {
				a.perMode = a.cfg.RunsChain() && a.cfg.RunsStrategy()
				if a.cfg.RunsChain() {
					if err := a.runChain(); err != nil {
						return err
					}
				}
				if a.cfg.RunsStrategy() {
					if err := a.runStrategy(); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "activation.yaml", "Path to the YAML config file")
	flags.StringVar(&opts.accountsFile, "accounts", "", "CSV file of accounts (id,action,balance); built-in batch when empty")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&opts.reportFormat, "report", "", "Write an activation report: json or yaml")
	flags.StringVarP(&opts.reportOutput, "output", "o", "", "Report file path (stderr when empty)")

	root.AddCommand(
		&cobra.Command{
			Use:   "chain",
			Short: "Dispatch accounts through the chain of handlers",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(opts, stdout, stderr, (*app).runChain)
			},
		},
		&cobra.Command{
			Use:   "strategy",
			Short: "Dispatch accounts through the strategy context",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return withApp(opts, stdout, stderr, (*app).runStrategy)
			},
		},
		newConfigCmd(opts, stdout),
	)

	return root
}

// withApp resolves configuration and logging, runs fn and flushes the logger
func withApp(opts *cliOptions, stdout, stderr io.Writer, fn func(*app) error) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	if opts.accountsFile != "" {
		cfg.AccountsFile = opts.accountsFile
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if opts.reportFormat != "" {
		cfg.Report.Format = opts.reportFormat
	}
	if opts.reportOutput != "" {
		cfg.Report.Output = opts.reportOutput
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cfg.Logging.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return fn(&app{cfg: cfg, logger: logger, stdout: stdout, stderr: stderr})
}

// accounts returns the CSV repository when configured, otherwise the built-in batch
func (a *app) accounts(fallback domain.AccountRepository) domain.AccountRepository {
	if a.cfg.AccountsFile != "" {
		return repository.NewCSVAccountRepository(a.cfg.AccountsFile, a.logger)
	}
	return fallback
}

func (a *app) runChain() error {
	order, err := a.cfg.ChainOrder()
	if err != nil {
		return err
	}

	head, err := chain.NewChainFromActions(a.stdout, order, chain.WithLogger(a.logger.Named("chain")))
	if err != nil {
		return err
	}

	svc := service.NewChainActivationService(
		a.accounts(repository.ChainFixture()),
		head,
		service.WithLogger(a.logger.Named("service")),
	)
	return a.run(svc)
}

func (a *app) runStrategy() error {
	svc := service.NewStrategyActivationService(
		a.accounts(repository.StrategyFixture()),
		strategy.NewContext(),
		strategy.NewSelector(a.stdout),
		service.WithLogger(a.logger.Named("service")),
	)
	return a.run(svc)
}

func (a *app) run(svc *service.ActivationService) error {
	result, err := svc.Run()
	if err != nil {
		return fmt.Errorf("%s activation failed: %w", svc.Mode(), err)
	}

	if a.cfg.Report.Format == "" {
		return nil
	}
	return a.writeReport(result)
}

func (a *app) writeReport(result domain.ActivationReport) error {
	formatter, err := report.NewFormatter(a.cfg.Report.Format, a.cfg.Report.Pretty)
	if err != nil {
		return err
	}

	output, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	outputFile := a.cfg.Report.Output
	if outputFile == "" {
		_, err := fmt.Fprintln(a.stderr, string(output))
		return err
	}

	// If no extension is provided, add the formatter's default extension
	if filepath.Ext(outputFile) == "" {
		outputFile = fmt.Sprintf("%s.%s", outputFile, formatter.FileExtension())
	}

	if a.perMode {
		ext := filepath.Ext(outputFile)
		outputFile = fmt.Sprintf("%s-%s%s", strings.TrimSuffix(outputFile, ext), result.Mode, ext)
	}

	if err := os.WriteFile(outputFile, output, 0o644); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}

	a.logger.Info("report written", zap.String("path", outputFile))
	return nil
}
