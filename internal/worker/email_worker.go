package worker

// email_worker.go
// Processes low-stock alert jobs from QueueEmail and mails the configured
// recipient via SMTP.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MoultonFarm-Sumner/washshed-sub000/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailWorker sends low-stock alert emails. When no recipient is configured
// the worker drops jobs silently — alerts are optional.
type EmailWorker struct {
	mailer *infra.Mailer
	to     string
}

func NewEmailWorker(mailer *infra.Mailer, to string) *EmailWorker {
	return &EmailWorker{mailer: mailer, to: to}
}

func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload LowStockJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return nil // malformed payloads are not retryable
	}
	if w.to == "" {
		log.Debug().Str("product", payload.Name).Msg("email_worker: no alert recipient configured — skipping")
		return nil
	}

	subject := fmt.Sprintf("Low stock: %s (%d left)", payload.Name, payload.CurrentStock)
	body := fmt.Sprintf(
		"%s at %s is down to %d units (level: %s).\n\nSent by the washshed inventory server.",
		payload.Name, payload.FieldLocation, payload.CurrentStock, payload.Level,
	)
	if err := w.mailer.Send(w.to, subject, body); err != nil {
		log.Error().Err(err).Str("to", w.to).Msg("email_worker: failed to send alert")
		return err
	}
	log.Info().Str("to", w.to).Str("product", payload.Name).Msg("email_worker: low stock alert sent")
	return nil
}
