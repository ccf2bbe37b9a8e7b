package services

import (
	"github.com/shopspring/decimal"
)

// Payout is the monthly split between the operator and the business.
type Payout struct {
	// HourlyPay is hours worked times the hourly rate.
	HourlyPay decimal.Decimal
	// OperatorBonus is the operator's share of the residual profit.
	OperatorBonus decimal.Decimal
	// BusinessRetained is the business's share of the residual profit.
	BusinessRetained decimal.Decimal
	// OperatorTotalPay is HourlyPay plus OperatorBonus.
	OperatorTotalPay decimal.Decimal
}

// ComputePayout derives the salary split from a period aggregate.
//
// The hourly pay acts as a floor: only profit above it (the residual)
// is split between operator and business. When net profit falls short
// of the floor the residual is zero; the shortfall is absorbed, never
// carried forward as a deficit, and the operator still gets the full
// hourly pay. Pure function of its inputs. The share-sum invariant is
// enforced at startup by Config.Validate, not here.
func ComputePayout(agg PeriodAggregate, cfg Config) Payout {
	hourlyPay := decimal.NewFromFloat(agg.HoursWorked).Mul(cfg.HourlyRate)

	residual := decimal.Zero
	if agg.NetProfit.GreaterThan(hourlyPay) {
		residual = agg.NetProfit.Sub(hourlyPay)
	}

	bonus := residual.Mul(cfg.OperatorShare)
	retained := residual.Mul(cfg.BusinessShare)

	return Payout{
		HourlyPay:        hourlyPay,
		OperatorBonus:    bonus,
		BusinessRetained: retained,
		OperatorTotalPay: hourlyPay.Add(bonus),
	}
}
