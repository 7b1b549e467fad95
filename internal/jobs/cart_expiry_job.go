package jobs

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultCartExpiryAge is how long a cart may stay untouched.
const DefaultCartExpiryAge = 7 * 24 * time.Hour

// cartExpirer is satisfied by commands.ExpireCartsCommandHandler.
type cartExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireCartsCommand) (int, error)
}

// CartExpiryJob periodically deletes carts nobody touched for maxAge.
type CartExpiryJob struct {
	handler  cartExpirer
	schedule string
	maxAge   time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewCartExpiryJob creates the job. schedule is a six-field cron expression
// (seconds first) and has no default; a non-positive maxAge means DefaultCartExpiryAge.
func NewCartExpiryJob(
	handler *commands.ExpireCartsCommandHandler,
	schedule string,
	maxAge time.Duration,
	logger *slog.Logger,
) *CartExpiryJob {
	return newCartExpiryJob(handler, schedule, maxAge, logger)
}

func newCartExpiryJob(handler cartExpirer, schedule string, maxAge time.Duration, logger *slog.Logger) *CartExpiryJob {
	if maxAge <= 0 {
		maxAge = DefaultCartExpiryAge
	}
	return &CartExpiryJob{
		handler:  handler,
		schedule: schedule,
		maxAge:   maxAge,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "cart_expiry_job"),
	}
}

// Start registers the sweep and starts the scheduler.
// Returns the cron parse error for an invalid schedule.
func (j *CartExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart expiry job started",
		"schedule", j.schedule,
		"maxAge", j.maxAge.String(),
	)
	return nil
}

// Run performs one sweep.
func (j *CartExpiryJob) Run(ctx context.Context) {
	cmd, err := commands.NewExpireCartsCommand(j.now().UTC().Add(-j.maxAge))
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart expiry job failed", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Cart expiry job failed", "expired", expired, "error", err)
		return
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Expired abandoned carts", "count", expired)
	}
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (j *CartExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Cart expiry job stopped")
}
