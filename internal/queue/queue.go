package queue

import (
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/maheshrc27/agency-cockpit/internal/models"
)

const maxDeliveryRetries = 5

func NewPostReadyPayload(post *models.Post) PostReadyPayload {
	return PostReadyPayload{
		PostID:     post.ID,
		CustomerID: post.CustomerID,
		Caption:    post.Caption,
		MediaName:  post.MediaName,
		Status:     post.Status,
		Date:       post.Date,
	}
}

func NewPostReadyTask(payload PostReadyPayload) (*asynq.Task, error) {
	taskPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypePostReady, taskPayload, asynq.MaxRetry(maxDeliveryRetries)), nil
}

func EnqueuePostReady(asynqClient *asynq.Client, payload PostReadyPayload) error {
	task, err := NewPostReadyTask(payload)
	if err != nil {
		return err
	}

	info, err := asynqClient.Enqueue(task)
	if err != nil {
		return err
	}

	slog.Info("task enqueued", "task_id", info.ID, "post_id", payload.PostID)
	return nil
}
