package handlers

import (
	"bytes"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"atelierbrocs/testhelpers"
)

func TestPeriodFromQuery(t *testing.T) {
	t.Run("explicit period", func(t *testing.T) {
		e, _ := newTestRequestEvent(http.MethodGet, "/dashboard?annee=2024&mois=6")
		year, month, err := periodFromQuery(e)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if year != 2024 || month != 6 {
			t.Errorf("period = %d/%d, want 2024/6", year, month)
		}
	})

	t.Run("month zero is whole year", func(t *testing.T) {
		e, _ := newTestRequestEvent(http.MethodGet, "/dashboard?annee=2025&mois=0")
		year, month, err := periodFromQuery(e)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if year != 2025 || month != 0 {
			t.Errorf("period = %d/%d, want 2025/0", year, month)
		}
	})

	t.Run("defaults to current month", func(t *testing.T) {
		e, _ := newTestRequestEvent(http.MethodGet, "/dashboard")
		now := time.Now()
		year, month, err := periodFromQuery(e)
		if err != nil {
			t.Fatalf("err = %v", err)
		}
		if year != now.Year() || month != int(now.Month()) {
			t.Errorf("period = %d/%d, want %d/%d", year, month, now.Year(), int(now.Month()))
		}
	})

	t.Run("rejects month out of range", func(t *testing.T) {
		e, _ := newTestRequestEvent(http.MethodGet, "/dashboard?mois=13")
		if _, _, err := periodFromQuery(e); err == nil {
			t.Error("err = nil, want range error")
		}
	})
}

func TestHandleDashboard(t *testing.T) {
	st := testhelpers.NewTestStore(t)
	cfg := testhelpers.TestConfig()
	item := testhelpers.CreateTestItem(t, st, "Commode en chêne", 100)
	testhelpers.SettleTestSale(t, st, item.ID, 300, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC))

	e, rec := newTestRequestEvent(http.MethodGet, "/dashboard?annee=2025&mois=6")
	if err := HandleDashboard(st, cfg)(e); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Juin 2025") {
		t.Error("page does not show the period label")
	}
	if !strings.Contains(body, "Commode en chêne") {
		t.Error("page does not list the period's sale")
	}
}

func TestHandleDashboardJSON(t *testing.T) {
	st := testhelpers.NewTestStore(t)
	cfg := testhelpers.TestConfig()

	e, rec := newTestRequestEvent(http.MethodGet, "/dashboard/data?annee=2025&mois=6")
	if err := HandleDashboardJSON(st, cfg)(e); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	for _, key := range []string{"aggregate", "payout", "years"} {
		if !bytes.Contains(rec.Body.Bytes(), []byte(key)) {
			t.Errorf("body misses %q: %s", key, rec.Body)
		}
	}
}

func TestHandleMonthlyReport(t *testing.T) {
	st := testhelpers.NewTestStore(t)
	cfg := testhelpers.TestConfig()
	item := testhelpers.CreateTestItem(t, st, "Commode en chêne", 100)
	testhelpers.SettleTestSale(t, st, item.ID, 300, time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC))

	e, rec := newTestRequestEvent(http.MethodGet, "/dashboard/report?annee=2025&mois=6")
	if err := HandleMonthlyReport(st, cfg)(e); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="Resultats_Juin_2025.xlsx"` {
		t.Errorf("content disposition = %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("body is not a workbook: %v", err)
	}
	defer f.Close()
	if f.GetSheetName(0) != "Juin 2025" {
		t.Errorf("sheet = %q, want %q", f.GetSheetName(0), "Juin 2025")
	}
}

func TestHandleMonthlyReport_BadPeriod(t *testing.T) {
	st := testhelpers.NewTestStore(t)

	e, rec := newTestRequestEvent(http.MethodGet, "/dashboard/report?mois=bof")
	if err := HandleMonthlyReport(st, testhelpers.TestConfig())(e); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
