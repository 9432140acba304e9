package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"

	"github.com/medialogapp/medialog-server/internal/config"
	"github.com/medialogapp/medialog-server/internal/id"
	"github.com/medialogapp/medialog-server/internal/mailer"
	"github.com/medialogapp/medialog-server/internal/store"
)

// exportSubject and exportFilename are fixed for every export email.
const (
	exportSubject  = "Your MediaLog export"
	exportFilename = "medialog-export.csv"
)

// Enqueuer hands delivery jobs to the background workers. Implemented
// by mailer.Dispatcher; tests substitute fakes.
type Enqueuer interface {
	Enqueue(job mailer.Job)
}

// ExportService serializes a user's catalog to CSV and schedules
// email delivery.
type ExportService struct {
	store      store.Catalog
	dispatcher Enqueuer
	mail       config.MailConfig
	logger     *slog.Logger
}

// NewExportService creates a new export service.
func NewExportService(store store.Catalog, dispatcher Enqueuer, mail config.MailConfig, logger *slog.Logger) *ExportService {
	return &ExportService{
		store:      store,
		dispatcher: dispatcher,
		mail:       mail,
		logger:     logger,
	}
}

// ExportReceipt acknowledges a scheduled export delivery. Delivery is
// best-effort; the receipt only confirms the job was accepted.
type ExportReceipt struct {
	JobID     string `json:"job_id"`
	Recipient string `json:"recipient"`
}

// ItemsCSV serializes the user's items to CSV. The byte output is
// deterministic for a fixed database state: fixed header, rows ordered
// by item id, RFC 4180 quoting. A user with no items yields a
// header-only document.
func (s *ExportService) ItemsCSV(ctx context.Context, userID int64) ([]byte, error) {
	if userID == 0 {
		return nil, store.ErrInvalidInput.WithMessage("user_id is required")
	}

	items, err := s.store.ListItemsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"id", "title", "category_id", "image_url"}); err != nil {
		return nil, fmt.Errorf("write CSV header: %w", err)
	}
	for _, item := range items {
		record := []string{
			fmt.Sprintf("%d", item.ID),
			item.Title,
			fmt.Sprintf("%d", item.CategoryID),
			item.ImageURL,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write CSV record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// DispatchEmail serializes the user's catalog and schedules delivery to
// their email address. The CSV is produced synchronously so the job
// carries an immutable snapshot; delivery itself happens in the
// background and its outcome is never surfaced to the caller.
func (s *ExportService) DispatchEmail(ctx context.Context, userID int64) (*ExportReceipt, error) {
	if userID == 0 {
		return nil, store.ErrInvalidInput.WithMessage("user_id is required")
	}

	user, err := s.store.GetUserByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, store.ErrInvalidInput.WithMessage("User does not exist")
	}
	if err != nil {
		return nil, err
	}
	if !user.HasEmail() {
		return nil, store.ErrInvalidInput.WithMessage("User has no email address")
	}

	csvBytes, err := s.ItemsCSV(ctx, userID)
	if err != nil {
		return nil, err
	}

	jobID, err := id.Generate("job")
	if err != nil {
		return nil, err
	}

	receipt := &ExportReceipt{JobID: jobID, Recipient: user.Email}

	if !s.mail.Configured() {
		s.logger.Warn("SMTP not fully configured; skipping export email",
			"job_id", jobID,
			"user_id", userID,
		)
		return receipt, nil
	}

	s.dispatcher.Enqueue(mailer.Job{
		ID:          jobID,
		Recipient:   user.Email,
		DisplayName: user.DisplayName(),
		Subject:     exportSubject,
		Filename:    exportFilename,
		CSV:         csvBytes,
	})

	return receipt, nil
}
