package queue

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

func EnqueueMetricsRollup(asynqClient *asynq.Client, payload MetricsRollupPayload, delay time.Duration) error {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	task := asynq.NewTask(TaskTypeMetricsRollup, taskPayload)

	_, err = asynqClient.Enqueue(task, asynq.ProcessIn(delay))
	if err != nil {
		return err
	}

	return nil
}
