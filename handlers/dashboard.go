package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"atelierbrocs/services"
	"atelierbrocs/store"
	"atelierbrocs/templates"
)

// periodFromQuery reads year/month query parameters, defaulting to the
// current month. month=0 asks for the whole-year aggregate.
func periodFromQuery(e *core.RequestEvent) (year, month int, err error) {
	now := time.Now()
	year, month = now.Year(), int(now.Month())

	q := e.Request.URL.Query()
	if v := q.Get("annee"); v != "" {
		if year, err = strconv.Atoi(v); err != nil {
			return 0, 0, fmt.Errorf("annee: not a year: %q", v)
		}
	}
	if v := q.Get("mois"); v != "" {
		if month, err = strconv.Atoi(v); err != nil || month < 0 || month > 12 {
			return 0, 0, fmt.Errorf("mois: expected 0-12, got %q", v)
		}
	}
	return year, month, nil
}

// HandleDashboard renders the results page for a period: the key
// figures and the salary split.
func HandleDashboard(st *store.Store, cfg services.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		year, month, err := periodFromQuery(e)
		if err != nil {
			return e.String(http.StatusBadRequest, err.Error())
		}

		dash, err := services.BuildDashboard(st, cfg, year, month)
		if err != nil {
			return writeError(e, err)
		}

		view := templates.DashboardView{
			Title:            "Dashboard",
			PeriodLabel:      fmt.Sprintf("%s %d", services.MonthName(month), year),
			Years:            dash.Years,
			Revenue:          services.FormatEUR(dash.Aggregate.Revenue),
			NetMargin:        services.FormatEUR(dash.Aggregate.NetMarginTotal),
			ExpenseTotal:     services.FormatEUR(dash.Aggregate.ExpenseTotal),
			NetProfit:        services.FormatEUR(dash.Aggregate.NetProfit),
			HoursWorked:      services.FormatHours(dash.Aggregate.HoursWorked),
			HourlyPay:        services.FormatEUR(dash.Payout.HourlyPay),
			OperatorBonus:    services.FormatEUR(dash.Payout.OperatorBonus),
			OperatorTotalPay: services.FormatEUR(dash.Payout.OperatorTotalPay),
			BusinessRetained: services.FormatEUR(dash.Payout.BusinessRetained),
		}
		for _, s := range dash.Sales {
			view.Sales = append(view.Sales, templates.SaleRow{
				ID:      s.ID,
				Item:    s.ItemName,
				Price:   services.FormatEUR(s.FinalPrice),
				Margin:  services.FormatEUR(s.NetMargin),
				Channel: s.Channel,
				Date:    s.Date.Format("2006-01-02"),
			})
		}
		return templates.DashboardPage(view).Render(e.Request.Context(), e.Response)
	}
}

// HandleDashboardJSON returns the raw period figures, for anything that
// wants numbers instead of a page.
func HandleDashboardJSON(st *store.Store, cfg services.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		year, month, err := periodFromQuery(e)
		if err != nil {
			return e.String(http.StatusBadRequest, err.Error())
		}

		dash, err := services.BuildDashboard(st, cfg, year, month)
		if err != nil {
			return writeError(e, err)
		}
		return e.JSON(http.StatusOK, map[string]any{
			"aggregate": dash.Aggregate,
			"payout":    dash.Payout,
			"years":     dash.Years,
		})
	}
}

// HandleMonthlyReport downloads the period results as an xlsx workbook.
func HandleMonthlyReport(st *store.Store, cfg services.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		year, month, err := periodFromQuery(e)
		if err != nil {
			return e.String(http.StatusBadRequest, err.Error())
		}

		dash, err := services.BuildDashboard(st, cfg, year, month)
		if err != nil {
			return writeError(e, err)
		}

		xlsxBytes, err := services.GenerateMonthlyReport(dash.Aggregate, dash.Payout, dash.Sales)
		if err != nil {
			log.Printf("report: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		filename := fmt.Sprintf("Resultats_%s_%d.xlsx", sanitizeFilename(services.MonthName(month)), year)
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
