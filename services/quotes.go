package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"atelierbrocs/models"
	"atelierbrocs/store"
)

// CreateQuoteInput is the form behind "créer devis".
type CreateQuoteInput struct {
	ProjectName string
	Amount      decimal.Decimal
	Date        time.Time
	Details     string
	ClientID    int // 0 = none yet
}

func (in CreateQuoteInput) validate() error {
	if in.ProjectName == "" {
		return &models.ValidationError{Field: "nom_projet", Message: "project name must not be empty"}
	}
	if in.Amount.IsNegative() {
		return &models.ValidationError{Field: "montant", Message: "quoted amount must not be negative"}
	}
	return nil
}

// CreateQuote appends a quote record. Quotes are append-only; turning
// an accepted quote into a sale stays a manual settlement, never an
// automatic promotion.
func CreateQuote(st *store.Store, in CreateQuoteInput) (models.Quote, error) {
	if err := in.validate(); err != nil {
		return models.Quote{}, err
	}

	var created models.Quote
	err := withConflictRetry(st, func(snap *store.Snapshot) error {
		if in.ClientID != 0 && findClient(snap.Clients, in.ClientID) < 0 {
			return fmt.Errorf("%w: client %d", models.ErrNotFound, in.ClientID)
		}
		max := 0
		for _, q := range snap.Quotes {
			if q.ID > max {
				max = q.ID
			}
		}
		created = models.Quote{
			ID:          max + 1,
			ProjectName: in.ProjectName,
			Amount:      in.Amount,
			Date:        in.Date,
			Details:     in.Details,
			ClientID:    in.ClientID,
		}
		snap.Quotes = append(snap.Quotes, created)
		return nil
	})
	if err != nil {
		return models.Quote{}, err
	}
	return created, nil
}

// Quotes returns all issued quotes in sheet order.
func Quotes(st *store.Store) ([]models.Quote, error) {
	snap, err := st.Load()
	if err != nil {
		return nil, err
	}
	return snap.Quotes, nil
}
