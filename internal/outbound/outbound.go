// Package outbound holds the adapters behind the validation side-effect
// interfaces: the fee calculation webhook and the outcome notifier.
package outbound

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/evermed/finvalid/internal/domain"
)

const webhookTimeout = 5 * time.Second

// WebhookFeeTrigger posts procedure ids to the fee calculation endpoint of
// the practice management system.
type WebhookFeeTrigger struct {
	url    string
	client *http.Client
}

// NewWebhookFeeTrigger returns a fee trigger posting to the given url.
func NewWebhookFeeTrigger(url string) *WebhookFeeTrigger {
	return &WebhookFeeTrigger{
		url:    url,
		client: &http.Client{Timeout: webhookTimeout},
	}
}

type feeTriggerBody struct {
	ProcedureID string `json:"procedure_id"`
}

// TriggerFeeCalculation posts the procedure id. A non-2xx reply is an error;
// the caller decides whether to propagate it.
func (t *WebhookFeeTrigger) TriggerFeeCalculation(ctx context.Context, procedureID string) error {
	if t.url == "" {
		return nil
	}

	body, err := json.Marshal(feeTriggerBody{ProcedureID: procedureID})
	if err != nil {
		return fmt.Errorf("encoding fee trigger body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building fee trigger request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("posting fee trigger: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("fee trigger endpoint replied %d", resp.StatusCode)
	}

	return nil
}

// LogNotifier reports validation outcomes to the application log. It stands
// in for the staff notification channel in deployments that have none.
type LogNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier returns a notifier writing to the given logger.
func NewLogNotifier(logger zerolog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// NotifyValidationOutcome logs the transition outcome.
func (n *LogNotifier) NotifyValidationOutcome(ctx context.Context, recordID string, newStatus domain.Status, actor domain.Actor) error {
	n.logger.Info().
		Str("record_id", recordID).
		Str("status", string(newStatus)).
		Str("actor", actor.ID).
		Msg("validation outcome")

	return nil
}
