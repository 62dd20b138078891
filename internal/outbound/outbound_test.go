package outbound

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/evermed/finvalid/internal/domain"
	"github.com/evermed/finvalid/pkg/randompkg"
)

func TestTriggerFeeCalculation(t *testing.T) {
	procedureID := randompkg.RecordID()

	var gotBody feeTriggerBody

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("request method: got %v, want %v", r.Method, http.MethodPost)
		}

		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("Decoding request body error: %v", err)
		}

		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	trigger := NewWebhookFeeTrigger(server.URL)

	if err := trigger.TriggerFeeCalculation(context.Background(), procedureID); err != nil {
		t.Fatalf("trigger.TriggerFeeCalculation(ctx, %v) returned error: %v", procedureID, err)
	}

	if gotBody.ProcedureID != procedureID {
		t.Errorf("posted procedure id: got %v, want %v", gotBody.ProcedureID, procedureID)
	}
}

func TestTriggerFeeCalculationEndpointError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	trigger := NewWebhookFeeTrigger(server.URL)

	if err := trigger.TriggerFeeCalculation(context.Background(), randompkg.RecordID()); err == nil {
		t.Error("trigger.TriggerFeeCalculation(ctx, id) returned nil error, want non-nil")
	}
}

func TestTriggerFeeCalculationDisabled(t *testing.T) {
	trigger := NewWebhookFeeTrigger("")

	if err := trigger.TriggerFeeCalculation(context.Background(), randompkg.RecordID()); err != nil {
		t.Errorf("trigger.TriggerFeeCalculation(ctx, id) returned error: %v", err)
	}
}

func TestNotifyValidationOutcome(t *testing.T) {
	notifier := NewLogNotifier(zerolog.Nop())

	actor := domain.Actor{ID: randompkg.ActorID(), Role: domain.RoleStaff}

	err := notifier.NotifyValidationOutcome(context.Background(), randompkg.RecordID(), domain.StatusApproved, actor)
	if err != nil {
		t.Errorf("notifier.NotifyValidationOutcome(...) returned error: %v", err)
	}
}
