package events

import (
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := "plan-123"

	before := time.Now().UTC()
	event := NewBaseEvent("repayment.plan.created", aggregateID, "RepaymentPlan")
	after := time.Now().UTC()

	if event.EventID() == "" {
		t.Error("expected non-empty event ID")
	}

	if event.EventType() != "repayment.plan.created" {
		t.Errorf("expected event type %q, got %q", "repayment.plan.created", event.EventType())
	}

	if event.AggregateID() != aggregateID {
		t.Errorf("expected aggregate ID %v, got %v", aggregateID, event.AggregateID())
	}

	if event.AggregateType() != "RepaymentPlan" {
		t.Errorf("expected aggregate type %q, got %q", "RepaymentPlan", event.AggregateType())
	}

	if event.OccurredAt().Before(before) || event.OccurredAt().After(after) {
		t.Errorf("expected occurredAt between %v and %v, got %v", before, after, event.OccurredAt())
	}
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}

func TestEventIDsAreUnique(t *testing.T) {
	a := NewBaseEvent("repayment.plan.created", "plan-1", "RepaymentPlan")
	b := NewBaseEvent("repayment.plan.created", "plan-1", "RepaymentPlan")

	if a.EventID() == b.EventID() {
		t.Errorf("expected distinct event IDs, both were %q", a.EventID())
	}
}
