package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/event"
)

// ---------------------------------------------------------------------------
// RepaymentPlan aggregate root
// ---------------------------------------------------------------------------

// RepaymentPlan is an immutable aggregate: terms plus the schedule generated
// from them. A plan is written once at loan creation; installment payment
// state is mutated later by the payment subsystem, never through this
// aggregate.
type RepaymentPlan struct {
	id           string
	loanID       string
	borrowerID   string
	terms        LoanTerms
	schedule     []ScheduleItem
	createdAt    time.Time
	version      int
	domainEvents []event.DomainEvent
}

// NewRepaymentPlan validates the terms, generates the amortization schedule,
// and raises RepaymentPlanCreated.
func NewRepaymentPlan(loanID, borrowerID string, terms LoanTerms, now time.Time) (RepaymentPlan, error) {
	if loanID == "" {
		return RepaymentPlan{}, &InvalidTermsError{Field: "loanID", Reason: "is required"}
	}
	if borrowerID == "" {
		return RepaymentPlan{}, &InvalidTermsError{Field: "borrowerID", Reason: "is required"}
	}

	schedule, err := GenerateSchedule(terms)
	if err != nil {
		return RepaymentPlan{}, err
	}

	id := uuid.New().String()
	plan := RepaymentPlan{
		id:         id,
		loanID:     loanID,
		borrowerID: borrowerID,
		terms:      terms,
		schedule:   schedule,
		createdAt:  now,
		version:    1,
	}

	totalInterest := plan.TotalInterest()
	plan.domainEvents = append(plan.domainEvents, event.NewRepaymentPlanCreated(
		id, loanID, borrowerID,
		terms.Principal, totalInterest, terms.Principal.Add(totalInterest),
		terms.Frequency.String(), terms.InterestMode.String(),
		terms.InstallmentCount,
		schedule[0].DueDate, schedule[len(schedule)-1].DueDate,
	))

	return plan, nil
}

// ReconstructRepaymentPlan rebuilds a RepaymentPlan aggregate from persistence.
func ReconstructRepaymentPlan(
	id, loanID, borrowerID string,
	terms LoanTerms,
	schedule []ScheduleItem,
	version int,
	createdAt time.Time,
) RepaymentPlan {
	return RepaymentPlan{
		id:         id,
		loanID:     loanID,
		borrowerID: borrowerID,
		terms:      terms,
		schedule:   schedule,
		version:    version,
		createdAt:  createdAt,
	}
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (p RepaymentPlan) ID() string                        { return p.id }
func (p RepaymentPlan) LoanID() string                    { return p.loanID }
func (p RepaymentPlan) BorrowerID() string                { return p.borrowerID }
func (p RepaymentPlan) Terms() LoanTerms                  { return p.terms }
func (p RepaymentPlan) Version() int                      { return p.version }
func (p RepaymentPlan) CreatedAt() time.Time              { return p.createdAt }
func (p RepaymentPlan) DomainEvents() []event.DomainEvent { return p.domainEvents }

// Schedule returns a defensive copy of the installment schedule.
func (p RepaymentPlan) Schedule() []ScheduleItem {
	if p.schedule == nil {
		return nil
	}
	out := make([]ScheduleItem, len(p.schedule))
	copy(out, p.schedule)
	return out
}

// TotalInterest sums the interest portions across all installments.
func (p RepaymentPlan) TotalInterest() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.schedule {
		total = total.Add(item.InterestPortion)
	}
	return total
}

// TotalRepayment sums the installment totals; by construction it equals
// principal plus total interest exactly.
func (p RepaymentPlan) TotalRepayment() decimal.Decimal {
	total := decimal.Zero
	for _, item := range p.schedule {
		total = total.Add(item.TotalAmount)
	}
	return total
}

// ClearEvents returns a copy with an empty event list.
func (p RepaymentPlan) ClearEvents() RepaymentPlan {
	next := p
	next.domainEvents = nil
	return next
}
