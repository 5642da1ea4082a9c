package queue

import (
	"github.com/postloom/postloom/internal/repository"
)

type Queue struct {
	pr repository.PostRepository
}

func NewQueue(pr repository.PostRepository) *Queue {
	return &Queue{pr: pr}
}

const TaskTypeMetricsRollup = "metrics:rollup"

type MetricsRollupPayload struct {
	PostID int64 `json:"post_id"`
}
