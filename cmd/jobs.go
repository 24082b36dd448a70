package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vibast-solutions/ms-go-checkout/app/service"
	"github.com/vibast-solutions/ms-go-checkout/config"
)

var (
	workerMode bool
)

// batchJob is one maintenance batch exposed as a subcommand.
type batchJob struct {
	name     string
	interval func(cfg config.JobsConfig) time.Duration
	run      func(ctx context.Context, s *service.CheckoutService) error
}

var dispatchNotificationsJob = batchJob{
	name:     "notifications_dispatch",
	interval: func(cfg config.JobsConfig) time.Duration { return cfg.NotificationDispatchInterval },
	run: func(ctx context.Context, s *service.CheckoutService) error {
		return s.RunDispatchNotificationsBatch(ctx)
	},
}

var expireAttemptsJob = batchJob{
	name:     "attempts_expire",
	interval: func(cfg config.JobsConfig) time.Duration { return cfg.AttemptExpireInterval },
	run: func(ctx context.Context, s *service.CheckoutService) error {
		return s.RunExpireAttemptsBatch(ctx)
	},
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Run order status notification commands",
}

var notificationsDispatchCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "Notify the order service about terminal payment statuses",
	Run: func(_ *cobra.Command, _ []string) {
		execute(dispatchNotificationsJob)
	},
}

var attemptsCmd = &cobra.Command{
	Use:   "attempts",
	Short: "Run payment attempt commands",
}

var attemptsExpireCmd = &cobra.Command{
	Use:   "expire",
	Short: "Mark open payment attempts past their expiry as expired",
	Run: func(_ *cobra.Command, _ []string) {
		execute(expireAttemptsJob)
	},
}

func init() {
	rootCmd.AddCommand(notificationsCmd)
	rootCmd.AddCommand(attemptsCmd)
	notificationsCmd.AddCommand(notificationsDispatchCmd)
	attemptsCmd.AddCommand(attemptsExpireCmd)

	rootCmd.PersistentFlags().BoolVar(&workerMode, "worker", false, "Repeat the batch on the configured interval until SIGINT or SIGTERM")
}

func execute(job batchJob) {
	cfg, checkoutService, cleanup := mustCreateCheckoutService()
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runner := &jobRunner{
		timeout: cfg.Jobs.RunTimeout,
		logger:  logrus.WithField("job", job.name),
		run: func(ctx context.Context) error {
			return job.run(ctx, checkoutService)
		},
	}

	if !workerMode {
		if err := runner.once(ctx); err != nil {
			os.Exit(1)
		}
		return
	}

	interval := job.interval(cfg.Jobs)
	if interval <= 0 {
		runner.logger.WithField("interval", interval.String()).Fatal("Worker interval must be positive")
	}
	runner.loop(ctx, interval)
}

// jobRunner runs one batch at a time. A shutdown signal stops new runs but
// lets the batch in flight finish within its timeout.
type jobRunner struct {
	timeout time.Duration
	logger  logrus.FieldLogger
	run     func(ctx context.Context) error
}

func (r *jobRunner) once(ctx context.Context) error {
	runCtx := context.WithoutCancel(ctx)
	if r.timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(runCtx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	err := r.run(runCtx)
	l := r.logger.WithField("latency", time.Since(start).String())
	if err != nil {
		l.WithError(err).Error("job_failed")
		return err
	}
	l.Info("job_completed")
	return nil
}

func (r *jobRunner) loop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for ctx.Err() == nil {
		_ = r.once(ctx)
		select {
		case <-ctx.Done():
		case <-ticker.C:
		}
	}
	r.logger.Info("Worker stopped")
}
