package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"atelierbrocs/models"
	"atelierbrocs/services"
	"atelierbrocs/store"
)

// HandleClientList returns the client book.
func HandleClientList(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		clients, err := services.Clients(st)
		if err != nil {
			return writeError(e, err)
		}
		return e.JSON(http.StatusOK, clients)
	}
}

// HandleClientCreate appends a client record.
func HandleClientCreate(st *store.Store) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return writeError(e, &models.ValidationError{Message: "invalid form data"})
		}

		client, err := services.AddClient(st,
			e.Request.FormValue("nom_client"),
			e.Request.FormValue("email"),
			e.Request.FormValue("telephone"),
		)
		if err != nil {
			return writeError(e, err)
		}
		return e.JSON(http.StatusCreated, client)
	}
}
