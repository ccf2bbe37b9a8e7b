package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"atelierbrocs/models"
	"atelierbrocs/services"
	"atelierbrocs/store"
	"atelierbrocs/templates"
)

// HandleInventoryList shows the workshop stock: every item not yet
// sold, newest first.
func HandleInventoryList(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		items, err := services.AvailableItems(st)
		if err != nil {
			return writeError(e, err)
		}

		view := templates.InventoryView{Title: "Atelier"}
		for _, it := range items {
			view.Items = append(view.Items, templates.ItemRow{
				ID:          it.ID,
				Name:        it.Name,
				Category:    string(it.Category),
				ProjectType: string(it.ProjectType),
				Status:      string(it.Status),
				Hours:       services.FormatHours(it.HoursSpent),
				Materials:   services.FormatEUR(it.MaterialCost),
				EntryDate:   it.EntryDate.Format("2006-01-02"),
			})
		}
		return templates.InventoryPage(view).Render(e.Request.Context(), e.Response)
	}
}

// HandleItemCreate registers a new piece of furniture entering the
// workshop.
func HandleItemCreate(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return writeError(e, &models.ValidationError{Message: "invalid form data"})
		}

		cost, err := formDecimal(e, "cout_total")
		if err != nil {
			return writeError(e, err)
		}
		entryDate, err := formDate(e, "date_entree")
		if err != nil {
			return writeError(e, err)
		}

		item, err := services.CreateItem(st, services.CreateItemInput{
			Name:            e.Request.FormValue("nom"),
			Category:        models.ParseCategory(e.Request.FormValue("categorie")),
			ProjectType:     models.ParseProjectType(e.Request.FormValue("type_projet")),
			AcquisitionCost: cost,
			EntryDate:       entryDate,
		})
		if err != nil {
			return writeError(e, err)
		}
		return e.JSON(http.StatusCreated, item)
	}
}

// HandleItemProgress adds hours and material cost to an item and moves
// it along the pipeline.
func HandleItemProgress(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		itemID, err := pathInt(e, "id")
		if err != nil {
			return writeError(e, err)
		}
		if err := e.Request.ParseForm(); err != nil {
			return writeError(e, &models.ValidationError{Message: "invalid form data"})
		}

		hours, err := formFloat(e, "temps_passe")
		if err != nil {
			return writeError(e, err)
		}
		materials, err := formDecimal(e, "cout_materiaux")
		if err != nil {
			return writeError(e, err)
		}
		status, err := models.ParseStatus(e.Request.FormValue("statut"))
		if err != nil {
			return writeError(e, &models.ValidationError{Field: "statut", Message: err.Error()})
		}

		item, err := services.RecordProgress(st, itemID, hours, materials, status)
		if err != nil {
			return writeError(e, err)
		}
		return e.JSON(http.StatusOK, item)
	}
}
