package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/hibiken/asynq"
)

func (j *Queue) HandlePostReadyTask(ctx context.Context, task *asynq.Task) error {
	var payload PostReadyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("decode payload: %v: %w", err, asynq.SkipRetry)
	}

	return j.DeliverPost(ctx, payload)
}

// DeliverPost POSTs the post to the automation webhook. Any non-2xx answer is
// an error so that asynq retries the task.
func (j *Queue) DeliverPost(ctx context.Context, payload PostReadyPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, j.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := j.client.Do(req)
	if err != nil {
		slog.Error("webhook delivery failed", "post_id", payload.PostID, "error", err)
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}

	slog.Info("post delivered to automation", "post_id", payload.PostID)
	return nil
}
