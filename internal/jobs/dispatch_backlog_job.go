package jobs

import (
	"context"
	"log/slog"
	"time"

	"quickbite/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

type StaleDeliveriesLister interface {
	Handle(ctx context.Context, query queries.ListStaleDeliveriesQuery) ([]queries.DeliveryView, error)
}

// DispatchBacklogJob reports deliveries that no partner has accepted within
// the threshold. It only logs; nothing is reassigned or cancelled.
type DispatchBacklogJob struct {
	lister    StaleDeliveriesLister
	schedule  string
	threshold time.Duration
	clock     func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

func NewDispatchBacklogJob(
	lister StaleDeliveriesLister,
	schedule string,
	threshold time.Duration,
	clock func() time.Time,
	logger *slog.Logger,
) *DispatchBacklogJob {
	if clock == nil {
		clock = time.Now
	}
	return &DispatchBacklogJob{
		lister:    lister,
		schedule:  schedule,
		threshold: threshold,
		clock:     clock,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "dispatch_backlog_job"),
	}
}

func (j *DispatchBacklogJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Dispatch backlog job started", "schedule", j.schedule, "threshold", j.threshold.String())
	return nil
}

func (j *DispatchBacklogJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Dispatch backlog job stopped")
}

// Run performs one check and returns how many deliveries are waiting too long.
func (j *DispatchBacklogJob) Run(ctx context.Context) int {
	now := j.clock().UTC()
	query, err := queries.NewListStaleDeliveriesQuery(now.Add(-j.threshold))
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch backlog check failed", "error", err)
		return 0
	}

	stale, err := j.lister.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Dispatch backlog check failed", "error", err)
		return 0
	}

	for _, d := range stale {
		j.logger.WarnContext(ctx, "Delivery waiting for a partner",
			"delivery_id", d.ID.String(),
			"order_code", d.OrderCode,
			"waiting", now.Sub(d.AssignedAt).Round(time.Second).String(),
		)
	}
	if len(stale) > 0 {
		j.logger.WarnContext(ctx, "Dispatch backlog", "count", len(stale))
	}
	return len(stale)
}
