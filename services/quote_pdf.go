package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"atelierbrocs/models"
)

// Deposit asked at order time; the balance is due on delivery.
var depositShare = decimal.RequireFromString("0.30")

const quoteTerms = "Devis valable 30 jours à compter de sa date d'émission. " +
	"Acompte de 30 % à la commande, solde à la livraison. " +
	"TVA non applicable, article 293 B du CGI."

// GenerateQuotePDF renders a quote as a downloadable PDF blob:
// letterhead with the studio address block, the quoted line item, the
// tax-exempt total, and the deposit/balance breakdown with the standard
// terms text.
func GenerateQuotePDF(quote models.Quote, clientName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addQuoteLetterhead(m, clientName)

	// Document number and date.
	m.AddRows(
		row.New(10).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Devis N° DEV-%d", quote.ID), props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Date : %s", quote.Date.Format("2006-01-02")), props.Text{
					Size:  11,
					Align: align.Left,
				}),
			),
		),
		row.New(6),
	)

	addQuoteItemTable(m, quote)
	addQuoteTotals(m, quote)

	m.AddRows(
		row.New(12),
		row.New(10).Add(
			col.New(12).Add(
				text.New(quoteTerms, props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Left,
					Color: &props.Color{Red: 100, Green: 100, Blue: 100},
				}),
			),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate quote PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addQuoteLetterhead adds the colored studio title, tagline, and the
// studio/client address block.
func addQuoteLetterhead(m core.Maroto, clientName string) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(studioName, props.Text{
					Size:  22,
					Style: fontstyle.Bold,
					Align: align.Center,
					Color: &woodBrown,
				}),
			),
		),
		row.New(5).Add(
			col.New(12).Add(
				text.New(studioTagline, props.Text{
					Size:  10,
					Style: fontstyle.Italic,
					Align: align.Center,
				}),
			),
		),
		row.New(8),
	)

	// Studio on the left, client on the right.
	m.AddRows(
		row.New(6).Add(
			col.New(6).Add(
				text.New("Les Brocs de Charlotte", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Left}),
			),
			col.New(6).Add(
				text.New(clientName, props.Text{Size: 11, Align: align.Right}),
			),
		),
		row.New(6).Add(
			col.New(6).Add(
				text.New(studioStreet, props.Text{Size: 11, Align: align.Left}),
			),
			col.New(6).Add(
				text.New(studioCity, props.Text{Size: 11, Align: align.Right}),
			),
		),
		row.New(10),
	)
}

// addQuoteItemTable renders the qty/designation/total table with the
// single quoted line.
func addQuoteItemTable(m core.Maroto, quote models.Quote) {
	headerBg := props.Color{Red: 240, Green: 230, Blue: 220}
	headerCell := props.Cell{BackgroundColor: &headerBg, BorderType: border.Full}
	valueCell := props.Cell{BorderType: border.Full}

	designation := quote.ProjectName
	if quote.Details != "" {
		designation += "\n" + quote.Details
	}

	m.AddRows(
		row.New(10).Add(
			col.New(2).Add(
				text.New("Qté", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Center}),
			).WithStyle(&headerCell),
			col.New(7).Add(
				text.New("Designation", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Left, Left: 2}),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New("Total HT", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Center}),
			).WithStyle(&headerCell),
		),
		row.New(20).Add(
			col.New(2).Add(
				text.New("1", props.Text{Size: 11, Align: align.Center, Top: 7}),
			).WithStyle(&valueCell),
			col.New(7).Add(
				text.New(designation, props.Text{Size: 11, Align: align.Left, Left: 2, Top: 3}),
			).WithStyle(&valueCell),
			col.New(3).Add(
				text.New(quote.Amount.StringFixedBank(2)+" Euros", props.Text{Size: 11, Align: align.Center, Top: 7}),
			).WithStyle(&valueCell),
		),
	)
}

// addQuoteTotals renders the tax-exempt total and the deposit/balance
// breakdown. Deposit is rounded half-even to 2 decimals and the balance
// is the exact remainder, so both always sum to the quoted amount.
func addQuoteTotals(m core.Maroto, quote models.Quote) {
	deposit := quote.Amount.Mul(depositShare).RoundBank(2)
	balance := quote.Amount.Sub(deposit)

	totalCell := props.Cell{BorderType: border.Full}

	m.AddRows(
		row.New(6),
		row.New(10).Add(
			col.New(9).Add(
				text.New(vatExemptLabel, props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right, Top: 2}),
			),
			col.New(3).Add(
				text.New(quote.Amount.StringFixedBank(2)+" Euros", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Center, Top: 2}),
			).WithStyle(&totalCell),
		),
		row.New(8).Add(
			col.New(9).Add(
				text.New("Acompte à la commande (30 %)", props.Text{Size: 10, Align: align.Right, Top: 2}),
			),
			col.New(3).Add(
				text.New(deposit.StringFixedBank(2)+" Euros", props.Text{Size: 10, Align: align.Center, Top: 2}),
			),
		),
		row.New(8).Add(
			col.New(9).Add(
				text.New("Solde à la livraison (70 %)", props.Text{Size: 10, Align: align.Right, Top: 2}),
			),
			col.New(3).Add(
				text.New(balance.StringFixedBank(2)+" Euros", props.Text{Size: 10, Align: align.Center, Top: 2}),
			),
		),
	)
}
