package services

import (
	"fmt"

	"atelierbrocs/models"
	"atelierbrocs/store"
)

// AddClient appends a client record. The table is append-only: nothing
// in the core ever edits or removes a client.
func AddClient(st *store.Store, name, email, phone string) (models.Client, error) {
	if name == "" {
		return models.Client{}, &models.ValidationError{Field: "nom_client", Message: "client name must not be empty"}
	}

	var created models.Client
	err := withConflictRetry(st, func(snap *store.Snapshot) error {
		max := 0
		for _, c := range snap.Clients {
			if c.ID > max {
				max = c.ID
			}
		}
		created = models.Client{ID: max + 1, Name: name, Email: email, Phone: phone}
		snap.Clients = append(snap.Clients, created)
		return nil
	})
	if err != nil {
		return models.Client{}, err
	}
	return created, nil
}

// Clients returns the client book in id order.
func Clients(st *store.Store) ([]models.Client, error) {
	snap, err := st.Load()
	if err != nil {
		return nil, err
	}
	return snap.Clients, nil
}

// ClientName resolves a client id to its display name. Id 0 means a
// walk-in sale and resolves to the generic label.
func ClientName(clients []models.Client, id int) string {
	if id == 0 {
		return "Passage"
	}
	for _, c := range clients {
		if c.ID == id {
			return c.Name
		}
	}
	return fmt.Sprintf("Client %d", id)
}
