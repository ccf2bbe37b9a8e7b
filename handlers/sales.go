package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"atelierbrocs/models"
	"atelierbrocs/services"
	"atelierbrocs/store"
)

// HandleSaleList returns the sales history, newest first.
func HandleSaleList(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		sales, err := services.SalesHistory(st)
		if err != nil {
			return writeError(e, err)
		}
		return e.JSON(http.StatusOK, sales)
	}
}

// HandleSaleSettle sells an available item: one request, one sale row,
// one item flipped to Sold.
func HandleSaleSettle(st *store.Store, cfg services.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return writeError(e, &models.ValidationError{Message: "invalid form data"})
		}

		itemID, err := formInt(e, "id_meuble")
		if err != nil {
			return writeError(e, err)
		}
		price, err := formDecimal(e, "prix_vente_final")
		if err != nil {
			return writeError(e, err)
		}
		clientID, err := formInt(e, "id_client")
		if err != nil {
			return writeError(e, err)
		}
		saleDate, err := formDate(e, "date_vente")
		if err != nil {
			return writeError(e, err)
		}

		sale, err := services.SettleSale(st, cfg, services.SettleSaleInput{
			ItemID:            itemID,
			FinalPrice:        price,
			Channel:           e.Request.FormValue("plateforme"),
			ClientID:          clientID,
			ApplySocialCharge: e.Request.FormValue("cotisations") != "non",
			SaleDate:          saleDate,
		})
		if err != nil {
			return writeError(e, err)
		}
		return e.JSON(http.StatusCreated, sale)
	}
}

// HandleInvoiceDownload renders the invoice PDF for one sale.
func HandleInvoiceDownload(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		saleID, err := pathInt(e, "id")
		if err != nil {
			return writeError(e, err)
		}

		snap, err := st.Load()
		if err != nil {
			return writeError(e, err)
		}
		var sale *models.Sale
		for i := range snap.Sales {
			if snap.Sales[i].ID == saleID {
				sale = &snap.Sales[i]
				break
			}
		}
		if sale == nil {
			return writeError(e, fmt.Errorf("%w: sale %d", models.ErrNotFound, saleID))
		}

		pdfBytes, err := services.GenerateInvoicePDF(*sale, services.ClientName(snap.Clients, sale.ClientID))
		if err != nil {
			log.Printf("invoice: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Facture_%d.pdf", sale.ID)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
