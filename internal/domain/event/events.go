package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Repayment Plan Events
// ---------------------------------------------------------------------------

// RepaymentPlanCreated is raised when a schedule has been materialized from
// chosen loan terms. The downstream ledger and notification consumers read it
// off the repayment-events topic.
type RepaymentPlanCreated struct {
	events.BaseEvent
	FirstDueDate     time.Time       `json:"first_due_date"`
	FinalDueDate     time.Time       `json:"final_due_date"`
	LoanID           string          `json:"loan_id"`
	BorrowerID       string          `json:"borrower_id"`
	Frequency        string          `json:"frequency"`
	InterestMode     string          `json:"interest_mode"`
	Principal        decimal.Decimal `json:"principal"`
	TotalInterest    decimal.Decimal `json:"total_interest"`
	TotalRepayment   decimal.Decimal `json:"total_repayment"`
	InstallmentCount int             `json:"installment_count"`
}

func NewRepaymentPlanCreated(
	planID, loanID, borrowerID string,
	principal, totalInterest, totalRepayment decimal.Decimal,
	frequency, interestMode string,
	installmentCount int,
	firstDueDate, finalDueDate time.Time,
) RepaymentPlanCreated {
	return RepaymentPlanCreated{
		BaseEvent:        events.NewBaseEvent("repayment.plan.created", planID, "RepaymentPlan"),
		LoanID:           loanID,
		BorrowerID:       borrowerID,
		Principal:        principal,
		TotalInterest:    totalInterest,
		TotalRepayment:   totalRepayment,
		Frequency:        frequency,
		InterestMode:     interestMode,
		InstallmentCount: installmentCount,
		FirstDueDate:     firstDueDate,
		FinalDueDate:     finalDueDate,
	}
}
