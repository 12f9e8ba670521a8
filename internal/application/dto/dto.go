package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// CreatePlanRequest carries the data needed to create a repayment plan.
type CreatePlanRequest struct {
	LoanID              string          `json:"loan_id"`
	BorrowerID          string          `json:"borrower_id"`
	Principal           decimal.Decimal `json:"principal"`
	InterestRatePercent decimal.Decimal `json:"interest_rate_percent"`
	InterestMode        string          `json:"interest_mode"`
	Frequency           string          `json:"frequency"`
	InstallmentCount    int             `json:"installment_count"`
	StartDate           time.Time       `json:"start_date"`
}

// GetPlanRequest identifies a repayment plan to retrieve. LoanID takes
// precedence when both identifiers are set.
type GetPlanRequest struct {
	PlanID string `json:"plan_id"`
	LoanID string `json:"loan_id"`
}

// SuggestTermsRequest carries the borrower's principal and income snapshot.
type SuggestTermsRequest struct {
	Principal        decimal.Decimal `json:"principal"`
	PayFrequency     string          `json:"pay_frequency"`
	PayAmount        decimal.Decimal `json:"pay_amount"`
	MonthlyIncome    decimal.Decimal `json:"monthly_income"`
	MonthlyExpenses  decimal.Decimal `json:"monthly_expenses"`
	DisposableIncome decimal.Decimal `json:"disposable_income"`
}

// GetPresetsRequest identifies the principal to generate presets for.
type GetPresetsRequest struct {
	Principal decimal.Decimal `json:"principal"`
}

// QuoteFeeRequest carries a single payment amount to quote the platform fee
// for.
type QuoteFeeRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleItemResponse represents a single installment in a plan.
type ScheduleItemResponse struct {
	Period           int             `json:"period"`
	DueDate          time.Time       `json:"due_date"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	IsPaid           bool            `json:"is_paid"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
}

// PlanResponse is the external representation of a repayment plan.
type PlanResponse struct {
	ID                  string                 `json:"id"`
	LoanID              string                 `json:"loan_id"`
	BorrowerID          string                 `json:"borrower_id"`
	Principal           decimal.Decimal        `json:"principal"`
	InterestRatePercent decimal.Decimal        `json:"interest_rate_percent"`
	InterestMode        string                 `json:"interest_mode"`
	Frequency           string                 `json:"frequency"`
	InstallmentCount    int                    `json:"installment_count"`
	StartDate           time.Time              `json:"start_date"`
	TotalInterest       decimal.Decimal        `json:"total_interest"`
	TotalRepayment      decimal.Decimal        `json:"total_repayment"`
	Schedule            []ScheduleItemResponse `json:"schedule"`
	CreatedAt           time.Time              `json:"created_at"`
}

// SuggestionResponse is one comfort-level suggestion.
type SuggestionResponse struct {
	Level               string          `json:"level"`
	Frequency           string          `json:"frequency"`
	PaymentAmount       decimal.Decimal `json:"payment_amount"`
	TotalRepayment      decimal.Decimal `json:"total_repayment"`
	NumberOfPayments    int             `json:"number_of_payments"`
	PercentOfDisposable int             `json:"percent_of_disposable"`
	WeeksToPayoff       int             `json:"weeks_to_payoff"`
}

// SuggestTermsResponse groups the three suggestion levels. Available is
// false when the profile cannot drive suggestions; Suggestions is omitted
// in that case and the caller falls back to presets.
type SuggestTermsResponse struct {
	Available   bool                 `json:"available"`
	Suggestions *SuggestionsResponse `json:"suggestions,omitempty"`

	// Source records whether the response was computed or served from
	// cache. Transport layers use it for instrumentation only.
	Source string `json:"-"`
}

// SuggestionsResponse holds the three named levels.
type SuggestionsResponse struct {
	Comfortable SuggestionResponse `json:"comfortable"`
	Balanced    SuggestionResponse `json:"balanced"`
	Aggressive  SuggestionResponse `json:"aggressive"`
}

// PresetResponse is one selectable schedule shape.
type PresetResponse struct {
	Label         string          `json:"label"`
	Frequency     string          `json:"frequency"`
	Installments  int             `json:"installments"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	Recommended   bool            `json:"recommended"`
}

// GetPresetsResponse lists the ranked presets for a principal.
type GetPresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}

// QuoteFeeResponse is the fee breakdown for a payment amount.
type QuoteFeeResponse struct {
	Amount         decimal.Decimal `json:"amount"`
	PlatformFee    decimal.Decimal `json:"platform_fee"`
	GrossAmount    decimal.Decimal `json:"gross_amount"`
	NetAmount      decimal.Decimal `json:"net_amount"`
	FeeLabel       string          `json:"fee_label"`
	FeeDescription string          `json:"fee_description"`
}
