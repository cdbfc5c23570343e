package queue

import (
	"net/http"
	"time"
)

type Queue struct {
	webhookURL string
	client     *http.Client
}

// NewQueue returns the worker side of the automation queue. Ready posts are
// delivered to webhookURL.
func NewQueue(webhookURL string, client *http.Client) *Queue {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Queue{
		webhookURL: webhookURL,
		client:     client,
	}
}

const TaskTypePostReady = "automation:post_ready"

type PostReadyPayload struct {
	PostID     int64  `json:"post_id"`
	CustomerID int64  `json:"customer_id"`
	Caption    string `json:"caption"`
	MediaName  string `json:"media_name"`
	Status     string `json:"status"`
	Date       string `json:"date"`
}
