package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/model"
	"github.com/lendcircle/repayment-service/internal/domain/port"
	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
	pkgpostgres "github.com/lendcircle/repayment-service/pkg/postgres"
)

// PlanRepo implements port.PlanRepository.
type PlanRepo struct {
	pool *pgxpool.Pool
}

// NewPlanRepo creates a new PostgreSQL-backed plan repository.
func NewPlanRepo(pool *pgxpool.Pool) *PlanRepo {
	return &PlanRepo{pool: pool}
}

// Save persists a plan and its schedule. Schedule rows are written once, on
// first insert; a plan header re-save never rewrites them.
func (r *PlanRepo) Save(ctx context.Context, plan model.RepaymentPlan) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		terms := plan.Terms()
		planQuery := `
		INSERT INTO repayment_plans (
			id, loan_id, borrower_id,
			principal, interest_rate_percent, interest_mode, frequency,
			installment_count, start_date, version, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (id) DO UPDATE SET
			version = repayment_plans.version + 1
		WHERE repayment_plans.version = $10
	`
		tag, err := tx.Exec(ctx, planQuery,
			plan.ID(), plan.LoanID(), plan.BorrowerID(),
			terms.Principal, terms.InterestRatePercent, terms.InterestMode.String(), terms.Frequency.String(),
			terms.InstallmentCount, terms.StartDate, plan.Version(), plan.CreatedAt(),
		)
		if err != nil {
			return fmt.Errorf("save plan: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return errors.New("optimistic locking conflict on plan")
		}

		if plan.Version() == 1 {
			for _, item := range plan.Schedule() {
				itemQuery := `
				INSERT INTO schedule_items (
					plan_id, period, due_date,
					total_amount, principal_portion, interest_portion, remaining_balance,
					is_paid, paid_at
				) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
				ON CONFLICT (plan_id, period) DO NOTHING
			`
				_, err := tx.Exec(ctx, itemQuery,
					plan.ID(), item.Period, item.DueDate,
					item.TotalAmount, item.PrincipalPortion, item.InterestPortion, item.RemainingBalance,
					item.IsPaid, item.PaidAt,
				)
				if err != nil {
					return fmt.Errorf("save schedule item %d: %w", item.Period, err)
				}
			}
		}

		return nil
	})
}

// FindByID retrieves a plan and its schedule by plan ID.
func (r *PlanRepo) FindByID(ctx context.Context, id string) (model.RepaymentPlan, error) {
	return r.findOne(ctx, "id = $1", id)
}

// FindByLoanID retrieves the plan for a loan.
func (r *PlanRepo) FindByLoanID(ctx context.Context, loanID string) (model.RepaymentPlan, error) {
	return r.findOne(ctx, "loan_id = $1", loanID)
}

// FindByBorrowerID retrieves all plans for a borrower, newest first.
func (r *PlanRepo) FindByBorrowerID(ctx context.Context, borrowerID string) ([]model.RepaymentPlan, error) {
	query := planSelect + ` WHERE borrower_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, borrowerID)
	if err != nil {
		return nil, fmt.Errorf("query plans: %w", err)
	}
	defer rows.Close()

	var plans []model.RepaymentPlan
	for rows.Next() {
		plan, err := scanPlanRow(rows)
		if err != nil {
			return nil, err
		}
		schedule, err := r.loadSchedule(ctx, plan.ID())
		if err != nil {
			return nil, err
		}
		plans = append(plans, model.ReconstructRepaymentPlan(
			plan.ID(), plan.LoanID(), plan.BorrowerID(),
			plan.Terms(), schedule, plan.Version(), plan.CreatedAt(),
		))
	}
	return plans, rows.Err()
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

const planSelect = `
	SELECT id, loan_id, borrower_id,
	       principal, interest_rate_percent, interest_mode, frequency,
	       installment_count, start_date, version, created_at
	FROM repayment_plans`

func (r *PlanRepo) findOne(ctx context.Context, where string, arg any) (model.RepaymentPlan, error) {
	row := r.pool.QueryRow(ctx, planSelect+" WHERE "+where, arg)
	plan, err := scanPlanRow(row)
	if err != nil {
		return model.RepaymentPlan{}, err
	}

	schedule, err := r.loadSchedule(ctx, plan.ID())
	if err != nil {
		return model.RepaymentPlan{}, err
	}

	return model.ReconstructRepaymentPlan(
		plan.ID(), plan.LoanID(), plan.BorrowerID(),
		plan.Terms(), schedule, plan.Version(), plan.CreatedAt(),
	), nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanPlanRow(s scannable) (model.RepaymentPlan, error) {
	var (
		id, loanID, borrowerID         string
		principal, interestRatePercent decimal.Decimal
		interestModeStr, frequencyStr  string
		installmentCount, version      int
		startDate, createdAt           time.Time
	)

	err := s.Scan(
		&id, &loanID, &borrowerID,
		&principal, &interestRatePercent, &interestModeStr, &frequencyStr,
		&installmentCount, &startDate, &version, &createdAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.RepaymentPlan{}, port.ErrPlanNotFound
	}
	if err != nil {
		return model.RepaymentPlan{}, fmt.Errorf("scan plan: %w", err)
	}

	mode, err := valueobject.NewInterestMode(interestModeStr)
	if err != nil {
		return model.RepaymentPlan{}, fmt.Errorf("parse interest mode: %w", err)
	}
	frequency, err := valueobject.NewFrequency(frequencyStr)
	if err != nil {
		return model.RepaymentPlan{}, fmt.Errorf("parse frequency: %w", err)
	}

	terms := model.LoanTerms{
		Principal:           principal,
		InterestRatePercent: interestRatePercent,
		InterestMode:        mode,
		Frequency:           frequency,
		InstallmentCount:    installmentCount,
		StartDate:           startDate,
	}
	return model.ReconstructRepaymentPlan(id, loanID, borrowerID, terms, nil, version, createdAt), nil
}

func (r *PlanRepo) loadSchedule(ctx context.Context, planID string) ([]model.ScheduleItem, error) {
	query := `
		SELECT period, due_date,
		       total_amount, principal_portion, interest_portion, remaining_balance,
		       is_paid, paid_at
		FROM schedule_items
		WHERE plan_id = $1
		ORDER BY period
	`
	rows, err := r.pool.Query(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("query schedule: %w", err)
	}
	defer rows.Close()

	var items []model.ScheduleItem
	for rows.Next() {
		var item model.ScheduleItem
		err := rows.Scan(
			&item.Period, &item.DueDate,
			&item.TotalAmount, &item.PrincipalPortion, &item.InterestPortion, &item.RemainingBalance,
			&item.IsPaid, &item.PaidAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan schedule item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
