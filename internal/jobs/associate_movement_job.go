package jobs

import (
	"context"
	"log/slog"

	"tracker/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AssociateMovementJob manages the simulated movement of delivery associates.
// Runs every second to shift active associates by a small random step and
// publish the resulting location updates.
type AssociateMovementJob struct {
	handler commands.MoveAssociatesCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewAssociateMovementJob creates a new job for moving delivery associates.
// Uses MoveAssociatesCommandHandler to process the movement tick every second.
func NewAssociateMovementJob(handler commands.MoveAssociatesCommandHandler, logger *slog.Logger) *AssociateMovementJob {
	return &AssociateMovementJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "associate_movement_job"),
	}
}

// Start begins the associate movement job to run every second.
func (j *AssociateMovementJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewMoveAssociatesCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Associate movement job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Associate movement job started (running every second)")
	return nil
}

// Stop stops the associate movement job.
func (j *AssociateMovementJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Associate movement job stopped")
}
