package queue

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"
	"github.com/postloom/postloom/internal/models"
)

func (q *Queue) HandleMetricsRollupTask(ctx context.Context, task *asynq.Task) error {
	var payload MetricsRollupPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return err
	}

	return q.RollupMetrics(ctx, payload.PostID)
}

// RollupMetrics recomputes the derived engagement counter from the stored
// reaction counts. Only published posts carry meaningful metrics; anything
// else is skipped quietly.
func (q *Queue) RollupMetrics(ctx context.Context, postID int64) error {
	post, err := q.pr.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil || post.Status != models.PostStatusPublished {
		return nil
	}

	metrics := post.Metrics
	metrics.Engagement = metrics.Likes + metrics.Comments + metrics.Shares
	now := time.Now()
	metrics.LastUpdated = &now

	if err := q.pr.UpdateMetrics(ctx, postID, metrics); err != nil {
		log.Printf("Error updating metrics for PostID %d: %v", postID, err)
		return err
	}
	return nil
}
