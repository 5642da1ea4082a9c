package job

import (
	"context"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/postloom/postloom/internal/models"
	"github.com/postloom/postloom/internal/queue"
	"github.com/postloom/postloom/internal/repository"
)

// MetricsRollupJob enqueues a rollup task for every published post on each
// cron tick. Nothing here publishes anything; posts only enter the
// published state through the API.
type MetricsRollupJob struct {
	pr     repository.PostRepository
	client *asynq.Client
}

func NewMetricsRollupJob(pr repository.PostRepository, client *asynq.Client) *MetricsRollupJob {
	return &MetricsRollupJob{
		pr:     pr,
		client: client,
	}
}

func (j *MetricsRollupJob) EnqueueRollups() {
	ctx := context.Background()

	ids, err := j.pr.ListIDsByStatus(ctx, models.PostStatusPublished)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	for _, id := range ids {
		if err := queue.EnqueueMetricsRollup(j.client, queue.MetricsRollupPayload{PostID: id}, 0); err != nil {
			slog.Info(err.Error())
		}
	}
}
