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

// HandleQuoteList returns all issued quotes.
func HandleQuoteList(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quotes, err := services.Quotes(st)
		if err != nil {
			return writeError(e, err)
		}
		return e.JSON(http.StatusOK, quotes)
	}
}

// HandleQuoteCreate issues a new quote.
func HandleQuoteCreate(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return writeError(e, &models.ValidationError{Message: "invalid form data"})
		}

		amount, err := formDecimal(e, "montant")
		if err != nil {
			return writeError(e, err)
		}
		clientID, err := formInt(e, "id_client")
		if err != nil {
			return writeError(e, err)
		}
		date, err := formDate(e, "date_devis")
		if err != nil {
			return writeError(e, err)
		}

		quote, err := services.CreateQuote(st, services.CreateQuoteInput{
			ProjectName: e.Request.FormValue("nom_projet"),
			Amount:      amount,
			Date:        date,
			Details:     e.Request.FormValue("details"),
			ClientID:    clientID,
		})
		if err != nil {
			return writeError(e, err)
		}
		return e.JSON(http.StatusCreated, quote)
	}
}

// HandleQuoteDownload renders the quote PDF with the deposit/balance
// breakdown.
func HandleQuoteDownload(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		quoteID, err := pathInt(e, "id")
		if err != nil {
			return writeError(e, err)
		}

		snap, err := st.Load()
		if err != nil {
			return writeError(e, err)
		}
		var quote *models.Quote
		for i := range snap.Quotes {
			if snap.Quotes[i].ID == quoteID {
				quote = &snap.Quotes[i]
				break
			}
		}
		if quote == nil {
			return writeError(e, fmt.Errorf("%w: quote %d", models.ErrNotFound, quoteID))
		}

		clientName := "Client"
		if quote.ClientID != 0 {
			clientName = services.ClientName(snap.Clients, quote.ClientID)
		}

		pdfBytes, err := services.GenerateQuotePDF(*quote, clientName)
		if err != nil {
			log.Printf("quote: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		filename := fmt.Sprintf("Devis_%s_%d.pdf", sanitizeFilename(quote.ProjectName), quote.ID)
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(pdfBytes)
		return nil
	}
}
