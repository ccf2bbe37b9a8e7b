package services

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"atelierbrocs/models"
)

func TestGenerateInvoicePDF(t *testing.T) {
	sale := models.Sale{
		ID:         3,
		ItemID:     7,
		ItemName:   "Commode Louis-Philippe",
		FinalPrice: decimal.RequireFromString("320"),
		Date:       time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		ClientID:   2,
		Channel:    "Leboncoin",
		NetMargin:  decimal.RequireFromString("150.64"),
	}

	pdf, err := GenerateInvoicePDF(sale, "Marie Dupont")
	if err != nil {
		t.Fatalf("generate invoice: %v", err)
	}

	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("output does not start with the PDF magic bytes")
	}
	if len(pdf) < 1000 {
		t.Errorf("pdf is suspiciously small: %d bytes", len(pdf))
	}
}

func TestGenerateInvoicePDF_WalkInClient(t *testing.T) {
	sale := models.Sale{
		ID:         1,
		ItemID:     1,
		ItemName:   "Table basse",
		FinalPrice: decimal.RequireFromString("45"),
		Date:       time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
	}

	pdf, err := GenerateInvoicePDF(sale, "")
	if err != nil {
		t.Fatalf("generate invoice: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF-")) {
		t.Error("output does not start with the PDF magic bytes")
	}
}
