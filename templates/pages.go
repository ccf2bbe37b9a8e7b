// Package templates renders the HTML pages. Components are built with
// templ.ComponentFunc over html/template so handlers keep the usual
// component.Render(ctx, w) shape.
package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
)

const pageShell = `<!DOCTYPE html>
<html lang="fr">
<head>
<meta charset="utf-8">
<title>{{.Title}} · Les Brocs de Charlotte</title>
<style>
body{font-family:Georgia,serif;margin:2rem auto;max-width:60rem;color:#3b2f2f;background:#faf6f0}
h1{color:#8b5a3c}
table{border-collapse:collapse;width:100%;margin-top:1rem}
th,td{border:1px solid #d4a373;padding:.4rem .6rem;text-align:left}
th{background:#f0e6dc}
.kpi{display:inline-block;background:#fff;border:1px solid #d4a373;border-radius:6px;padding:.8rem 1.2rem;margin:.3rem}
.kpi b{display:block;font-size:1.3rem}
.ok{color:#2e6930}.warn{color:#9a6200}
</style>
</head>
<body>
<h1>🪑 Les Brocs de Charlotte</h1>
`

// DashboardView is the data behind the results page.
type DashboardView struct {
	Title            string
	PeriodLabel      string
	Years            []int
	Revenue          string
	NetMargin        string
	ExpenseTotal     string
	NetProfit        string
	HoursWorked      string
	HourlyPay        string
	OperatorBonus    string
	OperatorTotalPay string
	BusinessRetained string
	Sales            []SaleRow
}

// SaleRow is one line of the period sales table, pre-formatted.
type SaleRow struct {
	ID      int
	Item    string
	Price   string
	Margin  string
	Channel string
	Date    string
}

var dashboardTmpl = template.Must(template.New("dashboard").Parse(pageShell + `
<h2>📈 Résultats de {{.PeriodLabel}}</h2>
<div>
<span class="kpi">CA<b>{{.Revenue}}</b></span>
<span class="kpi">Marge nette<b>{{.NetMargin}}</b></span>
<span class="kpi">Dépenses<b>{{.ExpenseTotal}}</b></span>
<span class="kpi">Bénéfice net réel<b>{{.NetProfit}}</b></span>
</div>
<h2>💰 Calculateur de salaire</h2>
<div>
<span class="kpi ok">Salaire Charlotte<b>{{.OperatorTotalPay}}</b>Heures ({{.HoursWorked}}) : {{.HourlyPay}} + Bonus : {{.OperatorBonus}}</span>
<span class="kpi warn">Part entreprise<b>{{.BusinessRetained}}</b></span>
</div>
<h2>Ventes de la période</h2>
<table>
<tr><th>N°</th><th>Meuble</th><th>Prix</th><th>Marge nette</th><th>Canal</th><th>Date</th></tr>
{{range .Sales}}<tr><td>{{.ID}}</td><td>{{.Item}}</td><td>{{.Price}}</td><td>{{.Margin}}</td><td>{{.Channel}}</td><td>{{.Date}}</td></tr>
{{else}}<tr><td colspan="6">Aucune vente sur la période.</td></tr>{{end}}
</table>
</body></html>
`))

// DashboardPage renders the monthly results and payout split.
func DashboardPage(v DashboardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return dashboardTmpl.Execute(w, v)
	})
}

// InventoryView is the data behind the workshop stock page.
type InventoryView struct {
	Title string
	Items []ItemRow
}

// ItemRow is one workshop card, pre-formatted.
type ItemRow struct {
	ID          int
	Name        string
	Category    string
	ProjectType string
	Status      string
	Hours       string
	Materials   string
	EntryDate   string
}

var inventoryTmpl = template.Must(template.New("inventory").Parse(pageShell + `
<h2>📦 Atelier &amp; Stock</h2>
<table>
<tr><th>N°</th><th>Meuble</th><th>Catégorie</th><th>Type</th><th>Statut</th><th>Heures</th><th>Matériaux</th><th>Entré le</th></tr>
{{range .Items}}<tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Category}}</td><td>{{.ProjectType}}</td><td>{{.Status}}</td><td>{{.Hours}}</td><td>{{.Materials}}</td><td>{{.EntryDate}}</td></tr>
{{else}}<tr><td colspan="8">Aucun meuble en atelier.</td></tr>{{end}}
</table>
</body></html>
`))

// InventoryPage renders the available-for-sale items.
func InventoryPage(v InventoryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return inventoryTmpl.Execute(w, v)
	})
}
