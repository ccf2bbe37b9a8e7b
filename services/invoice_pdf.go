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

	"atelierbrocs/models"
)

// Letterhead used on every outgoing document.
const (
	studioName     = "LES BROCS DE CHARLOTTE"
	studioTagline  = "Rénovation de meubles & brocante en ligne"
	studioStreet   = "11, Rue du Bois de la Roche"
	studioCity     = "29610 GARLAN"
	invoiceThanks  = "Merci pour votre achat chez Les Brocs de Charlotte !"
	vatExemptLabel = "TOTAL TTC (TVA non applicable)"
)

var woodBrown = props.Color{Red: 139, Green: 90, Blue: 60}

// GenerateInvoicePDF renders the invoice for one sale as a downloadable
// PDF blob. The sale row already carries the denormalized item name and
// final price, so no inventory lookup is needed here.
func GenerateInvoicePDF(sale models.Sale, clientName string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	// Letterhead and document number.
	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(studioName, props.Text{
					Size:  20,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Facture N° %d", sale.ID), props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(8),
	)

	// Date left, client right.
	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Date : %s", sale.Date.Format("2006-01-02")), props.Text{
					Size:  11,
					Align: align.Left,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Client : %s", clientName), props.Text{
					Size:  11,
					Align: align.Right,
				}),
			),
		),
		row.New(6),
	)

	// Single line item: designation and tax-inclusive total.
	addLineItemTable(m, "Designation", "Total TTC", sale.ItemName, sale.FinalPrice.StringFixedBank(2)+" Euros")

	m.AddRows(
		row.New(14),
		row.New(8).Add(
			col.New(12).Add(
				text.New(invoiceThanks, props.Text{
					Size:  10,
					Style: fontstyle.Italic,
					Align: align.Center,
				}),
			),
		),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invoice PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addLineItemTable renders the shared two-column item table: a filled
// header row and one value row.
func addLineItemTable(m core.Maroto, designationHeader, totalHeader, designation, total string) {
	headerBg := props.Color{Red: 240, Green: 240, Blue: 240}
	headerCell := props.Cell{BackgroundColor: &headerBg, BorderType: border.Full}
	valueCell := props.Cell{BorderType: border.Full}

	m.AddRows(
		row.New(10).Add(
			col.New(9).Add(
				text.New(designationHeader, props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Left, Left: 2}),
			).WithStyle(&headerCell),
			col.New(3).Add(
				text.New(totalHeader, props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Center}),
			).WithStyle(&headerCell),
		),
		row.New(15).Add(
			col.New(9).Add(
				text.New(designation, props.Text{Size: 12, Align: align.Left, Left: 2, Top: 4}),
			).WithStyle(&valueCell),
			col.New(3).Add(
				text.New(total, props.Text{Size: 12, Align: align.Center, Top: 4}),
			).WithStyle(&valueCell),
		),
	)
}
