package model

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lendcircle/repayment-service/internal/domain/valueobject"
)

// ScheduleItem is an immutable value object representing one dated installment
// of a repayment schedule. IsPaid and PaidAt are written by the payment
// subsystem after persistence; the scheduler always emits them unset.
type ScheduleItem struct {
	DueDate          time.Time
	PaidAt           *time.Time
	TotalAmount      decimal.Decimal
	PrincipalPortion decimal.Decimal
	InterestPortion  decimal.Decimal
	RemainingBalance decimal.Decimal
	Period           int
	IsPaid           bool
}

// GenerateSchedule turns fully resolved loan terms into an ordered list of
// dated installments with a principal/interest split.
//
// In simple mode the interest is a flat loan-level charge
// (principal × rate/100, not annualized) split evenly across installments. In
// compound mode interest accrues per period on the declining balance using a
// per-period rate of rate/100 divided by the number of periods per year, with
// the fixed payment
//
//	payment = balance × r / (1 − (1+r)^−n)
//
// Either way, the rounding remainder is absorbed entirely into the last
// installment so that the schedule sums exactly to principal + total interest.
func GenerateSchedule(terms LoanTerms) ([]ScheduleItem, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	if terms.InterestMode.Equal(valueobject.InterestModeCompound) {
		return generateCompound(terms), nil
	}
	return generateSimple(terms), nil
}

// generateSimple splits principal and the flat interest charge evenly, pushing
// both rounding remainders into the final installment.
func generateSimple(terms LoanTerms) []ScheduleItem {
	n := terms.InstallmentCount
	count := decimal.NewFromInt(int64(n))

	totalInterest := terms.Principal.
		Mul(terms.InterestRatePercent).
		Div(decimal.NewFromInt(100)).
		Round(2)

	evenPrincipal := terms.Principal.Div(count).Round(2)
	evenInterest := totalInterest.Div(count).Round(2)

	schedule := make([]ScheduleItem, 0, n)
	remaining := terms.Principal

	for period := 1; period <= n; period++ {
		principalPart := evenPrincipal
		interestPart := evenInterest
		if period == n {
			paid := evenPrincipal.Mul(decimal.NewFromInt(int64(n - 1)))
			principalPart = terms.Principal.Sub(paid)
			interestPart = totalInterest.Sub(evenInterest.Mul(decimal.NewFromInt(int64(n - 1))))
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		schedule = append(schedule, ScheduleItem{
			Period:           period,
			DueDate:          dueDate(terms.StartDate, terms.Frequency, period),
			PrincipalPortion: principalPart,
			InterestPortion:  interestPart,
			TotalAmount:      principalPart.Add(interestPart),
			RemainingBalance: remaining,
		})
	}

	return schedule
}

// generateCompound computes a standard fixed-payment amortization schedule,
// recalculating the principal/interest split installment by installment while
// carrying the remaining balance.
func generateCompound(terms LoanTerms) []ScheduleItem {
	n := terms.InstallmentCount

	// The power calculation uses float64, monetary arithmetic stays decimal.
	periodRate, _ := terms.InterestRatePercent.
		Div(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(terms.Frequency.PeriodsPerYear()))).
		Float64()

	var payment decimal.Decimal
	if periodRate == 0 {
		payment = terms.Principal.Div(decimal.NewFromInt(int64(n))).Round(2)
	} else {
		factor := math.Pow(1+periodRate, float64(n))
		paymentFloat := terms.Principal.InexactFloat64() * periodRate * factor / (factor - 1)
		payment = decimal.NewFromFloat(paymentFloat).Round(2)
	}

	periodRateDec := decimal.NewFromFloat(periodRate)
	schedule := make([]ScheduleItem, 0, n)
	remaining := terms.Principal

	for period := 1; period <= n; period++ {
		interest := remaining.Mul(periodRateDec).Round(2)
		principalPart := payment.Sub(interest)
		total := payment

		// Last installment absorbs the rounding drift so the balance lands
		// exactly on zero.
		if period == n {
			principalPart = remaining
			total = principalPart.Add(interest)
		}

		remaining = remaining.Sub(principalPart)
		if remaining.LessThan(decimal.Zero) {
			remaining = decimal.Zero
		}

		schedule = append(schedule, ScheduleItem{
			Period:           period,
			DueDate:          dueDate(terms.StartDate, terms.Frequency, period),
			PrincipalPortion: principalPart,
			InterestPortion:  interest,
			TotalAmount:      total,
			RemainingBalance: remaining,
		})
	}

	return schedule
}

// dueDate returns startDate advanced by `period` installment periods. The
// first installment is due exactly one period after the start date.
func dueDate(start time.Time, freq valueobject.Frequency, period int) time.Time {
	switch freq {
	case valueobject.FrequencyWeekly:
		return start.AddDate(0, 0, 7*period)
	case valueobject.FrequencyBiweekly:
		return start.AddDate(0, 0, 14*period)
	default:
		return addMonthsClamped(start, period)
	}
}

// addMonthsClamped adds calendar months, clamping to the last day of the
// target month instead of overflowing (Jan 31 + 1 month = Feb 28/29, not
// Mar 3, which is what time.AddDate would produce).
func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, hour, minute, sec, t.Nanosecond(), t.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, minute, sec, t.Nanosecond(), t.Location())
}
