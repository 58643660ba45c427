// Package finance implements the financial aggregation core.
package finance

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fleetbook/backend/internal/domain/entity"
	domainerror "github.com/fleetbook/backend/internal/domain/error"
)

// Period selects the dashboard lookback window.
type Period string

const (
	PeriodNone      Period = "none"
	PeriodLastDay   Period = "last_day"
	PeriodLastWeek  Period = "last_week"
	PeriodLastMonth Period = "last_month"
)

// IsValid reports whether the period is one of the known windows.
func (p Period) IsValid() bool {
	switch p {
	case PeriodNone, PeriodLastDay, PeriodLastWeek, PeriodLastMonth:
		return true
	}
	return false
}

// DashboardFilter is the request-scoped dashboard filter. It is never persisted.
type DashboardFilter struct {
	Period Period
}

// Cutoff resolves the period into a cutoff instant relative to now. The
// second return value is false when no filtering applies. The last_month
// window uses calendar arithmetic (same day-of-month one month back).
func (f DashboardFilter) Cutoff(now time.Time) (time.Time, bool) {
	switch f.Period {
	case PeriodLastDay:
		return now.Add(-24 * time.Hour), true
	case PeriodLastWeek:
		return now.AddDate(0, 0, -7), true
	case PeriodLastMonth:
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}

// StatusCount is one entry of the status breakdown.
type StatusCount struct {
	Status entity.VehicleStatus `json:"status"`
	Count  int                  `json:"count"`
}

// FleetTotals aggregates fleet value over the filtered set.
type FleetTotals struct {
	Purchase        int64 `json:"purchase"`
	Sale            int64 `json:"sale"`
	Cost            int64 `json:"cost"`
	PotentialMargin int64 `json:"potentialMargin"`
}

// MonthlySales is one calendar-month bucket of realized sales.
type MonthlySales struct {
	Month   string `json:"month"` // "YYYY-MM"
	Revenue int64  `json:"revenue"`
	Costs   int64  `json:"costs"`
	Margin  int64  `json:"margin"`
}

// SalesSummary aggregates realized sales across the whole fleet.
type SalesSummary struct {
	TotalRevenue int64          `json:"totalRevenue"`
	TotalCosts   int64          `json:"totalCosts"`
	TotalMargin  int64          `json:"totalMargin"`
	History      []MonthlySales `json:"history"`
}

// DashboardReport is the full dashboard rollup sent over the wire.
type DashboardReport struct {
	TotalVehicles   int           `json:"totalVehicles"`
	StatusBreakdown []StatusCount `json:"statusBreakdown"`
	Totals          FleetTotals   `json:"totals"`
	Sales           SalesSummary  `json:"sales"`
}

// breakdownOrder fixes the emission order of the status breakdown.
var breakdownOrder = []entity.VehicleStatus{
	entity.VehicleStatusInStock,
	entity.VehicleStatusInPreparation,
	entity.VehicleStatusSold,
}

// ComputeDashboard builds the dashboard rollup from a consistent read of the
// merchant's vehicles and their cost entries.
//
// The period filter restricts the status breakdown and fleet totals to
// vehicles created at or after the cutoff. Realized sales and the monthly
// history are always computed over the whole fleet: a sale does not stop
// counting because the vehicle was acquired before the window.
//
// Monthly history buckets realized sales by the calendar month of the
// vehicle's UpdatedAt timestamp. There is no dedicated sold-date field; the
// status change to sold is what sets UpdatedAt in the normal flow.
func ComputeDashboard(
	vehicles []*entity.Vehicle,
	costsByVehicle map[uuid.UUID][]*entity.CostEntry,
	filter DashboardFilter,
	now time.Time,
) (*DashboardReport, error) {
	if !filter.Period.IsValid() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidPeriod,
			"period must be: none, last_day, last_week or last_month",
			domainerror.ErrInvalidPeriod,
		)
	}

	// Total every vehicle once up front. This also validates the input shape
	// (ownership of cost rows, non-negative amounts) before any accumulation.
	costTotals := make(map[uuid.UUID]*Totals, len(vehicles))
	for _, v := range vehicles {
		totals, err := ComputeTotals(v, costsByVehicle[v.ID])
		if err != nil {
			return nil, err
		}
		costTotals[v.ID] = totals
	}

	cutoff, hasCutoff := filter.Cutoff(now)

	report := &DashboardReport{
		StatusBreakdown: make([]StatusCount, 0, len(breakdownOrder)),
		Sales: SalesSummary{
			History: make([]MonthlySales, 0),
		},
	}

	statusCounts := make(map[entity.VehicleStatus]int)
	for _, v := range vehicles {
		if hasCutoff && v.CreatedAt.Before(cutoff) {
			continue
		}

		statusCounts[v.Status]++
		report.TotalVehicles++

		totals := costTotals[v.ID]
		report.Totals.Cost += totals.TotalCost

		if v.Status != entity.VehicleStatusSold {
			report.Totals.Purchase += v.PurchasePrice
			if v.SalePrice != nil {
				report.Totals.Sale += *v.SalePrice
				report.Totals.PotentialMargin += *v.SalePrice - totals.TotalCost
			}
		}
	}

	for _, status := range breakdownOrder {
		if count := statusCounts[status]; count > 0 {
			report.StatusBreakdown = append(report.StatusBreakdown, StatusCount{
				Status: status,
				Count:  count,
			})
		}
	}

	// Realized sales, unfiltered by period. A sold vehicle without a sale
	// price is a data anomaly and contributes nowhere.
	buckets := make(map[string]*MonthlySales)
	for _, v := range vehicles {
		if v.Status != entity.VehicleStatusSold || v.SalePrice == nil {
			continue
		}

		totals := costTotals[v.ID]
		revenue := *v.SalePrice
		margin := revenue - totals.TotalCost

		report.Sales.TotalRevenue += revenue
		report.Sales.TotalCosts += totals.TotalCost
		report.Sales.TotalMargin += margin

		month := v.UpdatedAt.Format("2006-01")
		bucket, ok := buckets[month]
		if !ok {
			bucket = &MonthlySales{Month: month}
			buckets[month] = bucket
		}
		bucket.Revenue += revenue
		bucket.Costs += totals.TotalCost
		bucket.Margin += margin
	}

	// Lexicographic sort on "YYYY-MM" keys matches chronological order.
	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)
	for _, month := range months {
		report.Sales.History = append(report.Sales.History, *buckets[month])
	}

	return report, nil
}
