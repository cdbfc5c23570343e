package handlers

import (
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/maheshrc27/agency-cockpit/internal/models"
	"github.com/maheshrc27/agency-cockpit/internal/queue"
	"github.com/maheshrc27/agency-cockpit/internal/service"
	"github.com/maheshrc27/agency-cockpit/internal/transfer"
)

type PostHandler struct {
	s           service.PostService
	media       service.MediaService
	AsynqClient *asynq.Client
}

// NewPostHandler wires post scheduling. asynqClient may be nil when no queue
// is configured.
func NewPostHandler(service service.PostService, media service.MediaService, asynqClient *asynq.Client) *PostHandler {
	return &PostHandler{s: service, media: media, AsynqClient: asynqClient}
}

func (h *PostHandler) SchedulePost(c *fiber.Ctx) error {
	customerID, _ := strconv.ParseInt(strings.TrimSpace(c.FormValue("customer_id")), 10, 64)

	in := &transfer.PostCreation{
		CustomerID: customerID,
		Caption:    c.FormValue("caption"),
		MediaName:  strings.TrimSpace(c.FormValue("media_url")),
		Date:       c.FormValue("date"),
		Time:       c.FormValue("time"),
	}

	file, fileErr := c.FormFile("media")
	if fileErr == nil {
		in.MediaName = file.Filename
	}

	// Checked before the upload so a rejected request stores nothing.
	if in.Incomplete() {
		return sendError(c, service.ErrMissingFields)
	}

	if fileErr == nil {
		f, err := file.Open()
		if err != nil {
			slog.Error(err.Error())
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unable to read media",
			})
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			slog.Error(err.Error())
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Unable to read media",
			})
		}

		in.MediaName, err = h.media.Store(c.Context(), file.Filename, data)
		if err != nil {
			return sendError(c, err)
		}
	}

	post, err := h.s.Schedule(c.Context(), in)
	if err != nil {
		return sendError(c, err)
	}

	if post.Status == models.PostStatusReady && h.AsynqClient != nil {
		// The row is already stored; the automation can still pick it up
		// from there if the enqueue fails.
		if err := queue.EnqueuePostReady(h.AsynqClient, queue.NewPostReadyPayload(post)); err != nil {
			slog.Error("unable to enqueue ready post", "post_id", post.ID, "error", err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	posts, err := h.s.List(c.Context())
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}

func (h *PostHandler) ListOwnPosts(c *fiber.Ctx) error {
	posts, err := h.s.ListByCustomer(c.Context(), GetAccountID(c))
	if err != nil {
		return sendError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}
