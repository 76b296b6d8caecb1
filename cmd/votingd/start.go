package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cosmossdk.io/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/axelarnetwork/utils"
	"github.com/axelarnetwork/utils/jobs"

	"github.com/blockvote/votingd/auth"
	"github.com/blockvote/votingd/config"
	ledgerRPC "github.com/blockvote/votingd/ledger/rpc"
	"github.com/blockvote/votingd/session"
	"github.com/blockvote/votingd/wallet"
)

func getStartCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the voting session daemon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := viper.New()
			v.SetEnvPrefix("VOTINGD")
			v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
			v.AutomaticEnv()

			for _, flag := range []string{"ledger_url", "contract_address", "clef_endpoint", "poll_interval"} {
				if err := v.BindPFlag(flag, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}

			if file, _ := cmd.Flags().GetString("config"); file != "" {
				v.SetConfigFile(file)
				if err := v.ReadInConfig(); err != nil {
					return errors.Wrap(err, "unable to read config file")
				}
			}

			cfg := config.DefaultConfig()
			if err := v.Unmarshal(&cfg, config.AddDecodeHooks); err != nil {
				return errors.Wrap(err, "malformed configuration")
			}

			logger := log.NewLogger(os.Stderr).With("module", "votingd")
			return runSession(cmd.Context(), cfg, logger)
		},
	}

	addStartFlags(cmd.Flags())

	return cmd
}

func addStartFlags(flags *pflag.FlagSet) {
	defaults := config.DefaultConfig()
	flags.String("config", "", "path to a votingd config file")
	flags.String("ledger_url", defaults.LedgerURL, "JSON-RPC endpoint of the ledger")
	flags.String("contract_address", "", "address of the deployed voting contract")
	flags.String("clef_endpoint", defaults.ClefEndpoint, "endpoint of the clef external signer")
	flags.Duration("poll_interval", defaults.PollInterval, "fixed interval of the pull-based snapshot refresh")
}

func runSession(ctx context.Context, cfg config.Config, logger log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		logger.Info(fmt.Sprintf("captured signal %q", sig))
		cancel()
	}()

	provider, err := wallet.NewClefProvider(cfg.ClefEndpoint, logger)
	if err != nil {
		return err
	}

	verifier, err := auth.NewTokenVerifier(cfg.AuthConfig.Token, cfg.AuthConfig.Principal)
	if err != nil {
		return errors.Wrap(err, "invalid auth configuration")
	}

	client, err := dialLedger(ctx, cfg, provider, logger)
	if err != nil {
		provider.Close()
		return err
	}

	coordinator := session.NewCoordinator(client, verifier, provider, logger)
	defer coordinator.Close()
	reconciler := coordinator.Reconciler()

	mgr := jobs.NewMgr(ctx)
	js := []jobs.Job{
		coordinator.Run,
		reconciler.Run,
		reconciler.PollJob(cfg.PollInterval),
		renderJob(coordinator),
	}

	// prefer push-based refresh when the endpoint supports log subscriptions
	if events, sub, err := client.Events(ctx); err == nil {
		js = append(js, reconciler.WatchJob(events, sub))
	} else {
		logger.Info("ledger endpoint does not support notifications, relying on polling", "err", err)
	}

	logger.Info("session started", "contract", cfg.ContractAddress.Hex())
	reconciler.Trigger()

	mgr.AddJobs(js...)
	go func() {
		select {
		case <-ctx.Done():
			return
		case err := <-mgr.Errs():
			logger.Error(errors.Wrap(err, "job failed").Error())
			cancel()
		}
	}()
	<-mgr.Done()

	logger.Info("shutting down")
	return nil
}

func dialLedger(ctx context.Context, cfg config.Config, provider *wallet.ClefProvider, logger log.Logger) (*ledgerRPC.VotingClient, error) {
	backOff := utils.LinearBackOff(time.Second)

	for i := 0; ; i++ {
		client, err := ledgerRPC.NewClient(ctx, cfg.LedgerURL, cfg.ContractAddress, provider.Transactor)
		if err == nil {
			return client, nil
		}
		if i >= cfg.DialRetries {
			return nil, errors.Wrapf(err, "unable to reach ledger endpoint %s", cfg.LedgerURL)
		}

		timeout := backOff(i)
		logger.Info("ledger endpoint unreachable, retrying", "in", timeout.String(), "err", err)
		time.Sleep(timeout)
	}
}
