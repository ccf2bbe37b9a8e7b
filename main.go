package main

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"atelierbrocs/handlers"
	"atelierbrocs/services"
	"atelierbrocs/store"
)

func main() {
	cfg, err := services.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	// Bad shares or rates must keep the process from starting at all.
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	st, err := store.Open(cfg.WorkbookPath)
	if err != nil {
		log.Fatal(err)
	}

	app := pocketbase.New()

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// ── Dashboard ────────────────────────────────────────────
		se.Router.GET("/dashboard", handlers.HandleDashboard(st, cfg))
		se.Router.GET("/dashboard/data", handlers.HandleDashboardJSON(st, cfg))
		se.Router.GET("/dashboard/report", handlers.HandleMonthlyReport(st, cfg))

		// ── Atelier & stock ──────────────────────────────────────
		se.Router.GET("/inventaire", handlers.HandleInventoryList(st))
		se.Router.POST("/inventaire", handlers.HandleItemCreate(st))
		se.Router.POST("/inventaire/{id}/progression", handlers.HandleItemProgress(st))

		// ── Ventes ───────────────────────────────────────────────
		se.Router.GET("/ventes", handlers.HandleSaleList(st))
		se.Router.POST("/ventes", handlers.HandleSaleSettle(st, cfg))
		se.Router.GET("/ventes/{id}/facture", handlers.HandleInvoiceDownload(st))

		// ── Devis ────────────────────────────────────────────────
		se.Router.GET("/devis", handlers.HandleQuoteList(st))
		se.Router.POST("/devis", handlers.HandleQuoteCreate(st))
		se.Router.GET("/devis/{id}/pdf", handlers.HandleQuoteDownload(st))

		// ── Clients ──────────────────────────────────────────────
		se.Router.GET("/clients", handlers.HandleClientList(st))
		se.Router.POST("/clients", handlers.HandleClientCreate(st))

		// ── Dépenses ─────────────────────────────────────────────
		se.Router.GET("/depenses", handlers.HandleExpenseList(st))
		se.Router.POST("/depenses", handlers.HandleExpenseCreate(st))

		// Redirect home to the dashboard
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/dashboard")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
