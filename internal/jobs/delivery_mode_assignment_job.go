package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"checkout/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

const DefaultDeliveryModeAssignmentSchedule = "*/5 * * * * *"

type AssignPreferredDeliveryModesHandler interface {
	Handle(ctx context.Context, cmd commands.AssignPreferredDeliveryModesCommand) (int, error)
}

// DeliveryModeAssignmentJob selects preferred delivery modes for pending carts.
type DeliveryModeAssignmentJob struct {
	handler  AssignPreferredDeliveryModesHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDeliveryModeAssignmentJob creates the job. An empty schedule means
// DefaultDeliveryModeAssignmentSchedule.
func NewDeliveryModeAssignmentJob(
	handler AssignPreferredDeliveryModesHandler,
	schedule string,
	logger *slog.Logger,
) *DeliveryModeAssignmentJob {
	if schedule == "" {
		schedule = DefaultDeliveryModeAssignmentSchedule
	}
	return &DeliveryModeAssignmentJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "delivery_mode_assignment_job"),
	}
}

func (j *DeliveryModeAssignmentJob) Name() string {
	return "delivery mode assignment"
}

// Start registers the job on its schedule and starts the scheduler.
func (j *DeliveryModeAssignmentJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Delivery mode assignment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running batch to finish.
func (j *DeliveryModeAssignmentJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Delivery mode assignment job stopped")
}

func (j *DeliveryModeAssignmentJob) run(ctx context.Context) {
	assigned, err := j.handler.Handle(ctx, commands.NewAssignPreferredDeliveryModesCommand())
	if err != nil {
		if !errors.Is(err, commands.ErrNoPendingCarts) {
			j.logger.ErrorContext(ctx, "Delivery mode assignment job failed", "error", err)
		}
		return
	}
	j.logger.InfoContext(ctx, "Delivery modes assigned", "carts", assigned)
}
