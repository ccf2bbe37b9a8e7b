package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"atelierbrocs/models"
)

func TestGenerateQuotePDF(t *testing.T) {
	quote := models.Quote{
		ID:          5,
		ProjectName: "Restauration armoire bretonne",
		Amount:      decimal.RequireFromString("480"),
		Date:        time.Date(2025, 7, 2, 0, 0, 0, 0, time.UTC),
		Details:     "Décapage complet, traitement du bois, cire naturelle",
		ClientID:    3,
	}

	pdf, err := GenerateQuotePDF(quote, "Jean Le Goff")
	if err != nil {
		t.Fatalf("generate quote: %v", err)
	}

	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("output does not start with the PDF magic bytes")
	}
	if len(pdf) < 1000 {
		t.Errorf("pdf is suspiciously small: %d bytes", len(pdf))
	}
}

func TestQuoteDepositSplit(t *testing.T) {
	tests := []struct {
		amount      string
		wantDeposit string
		wantBalance string
	}{
		{"480", "144", "336"},
		{"100", "30", "70"},
		{"99.99", "30", "69.99"},
		{"0.10", "0.03", "0.07"},
	}

	for _, tt := range tests {
		amount := decimal.RequireFromString(tt.amount)
		deposit := amount.Mul(depositShare).RoundBank(2)
		balance := amount.Sub(deposit)

		assertAmount(t, "deposit("+tt.amount+")", deposit, tt.wantDeposit)
		assertAmount(t, "balance("+tt.amount+")", balance, tt.wantBalance)
		// The two installments always reconstruct the quoted amount.
		assertAmount(t, "sum("+tt.amount+")", deposit.Add(balance), tt.amount)
	}
}
