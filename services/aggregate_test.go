package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"atelierbrocs/models"
)

func saleOn(id, itemID int, price, margin string, date time.Time) models.Sale {
	return models.Sale{
		ID:         id,
		ItemID:     itemID,
		FinalPrice: decimal.RequireFromString(price),
		NetMargin:  decimal.RequireFromString(margin),
		Date:       date,
	}
}

func expenseOn(id int, amount string, date time.Time) models.Expense {
	return models.Expense{
		ID:     id,
		Amount: decimal.RequireFromString(amount),
		Date:   date,
	}
}

func TestAggregate(t *testing.T) {
	march := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	april := time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC)

	sales := []models.Sale{
		saleOn(1, 1, "300", "143.10", march),
		saleOn(2, 2, "150", "80", march),
		saleOn(3, 3, "500", "400", april),
	}
	expenses := []models.Expense{
		expenseOn(1, "30", march),
		expenseOn(2, "12.50", april),
		expenseOn(3, "99", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
	}
	inventory := []models.InventoryItem{
		{ID: 1, HoursSpent: 4},
		{ID: 2, HoursSpent: 6},
		{ID: 3, HoursSpent: 10},
		{ID: 4, HoursSpent: 99}, // unsold, must never count
	}

	t.Run("single month", func(t *testing.T) {
		agg := Aggregate(sales, expenses, inventory, 2025, 3)

		assertAmount(t, "Revenue", agg.Revenue, "450")
		assertAmount(t, "NetMarginTotal", agg.NetMarginTotal, "223.10")
		assertAmount(t, "ExpenseTotal", agg.ExpenseTotal, "30")
		assertAmount(t, "NetProfit", agg.NetProfit, "193.10")
		if agg.HoursWorked != 10 {
			t.Errorf("HoursWorked = %v, want 10", agg.HoursWorked)
		}
	})

	t.Run("adjacent month excluded", func(t *testing.T) {
		agg := Aggregate(sales, expenses, inventory, 2025, 4)

		assertAmount(t, "Revenue", agg.Revenue, "500")
		assertAmount(t, "ExpenseTotal", agg.ExpenseTotal, "12.50")
		if agg.HoursWorked != 10 {
			t.Errorf("HoursWorked = %v, want 10", agg.HoursWorked)
		}
	})

	t.Run("whole year", func(t *testing.T) {
		agg := Aggregate(sales, expenses, inventory, 2025, 0)

		assertAmount(t, "Revenue", agg.Revenue, "950")
		assertAmount(t, "NetMarginTotal", agg.NetMarginTotal, "623.10")
		assertAmount(t, "ExpenseTotal", agg.ExpenseTotal, "42.50")
		assertAmount(t, "NetProfit", agg.NetProfit, "580.60")
		if agg.HoursWorked != 20 {
			t.Errorf("HoursWorked = %v, want 20", agg.HoursWorked)
		}
	})

	t.Run("other year excluded", func(t *testing.T) {
		agg := Aggregate(sales, expenses, inventory, 2024, 0)

		assertAmount(t, "Revenue", agg.Revenue, "0")
		assertAmount(t, "ExpenseTotal", agg.ExpenseTotal, "99")
		assertAmount(t, "NetProfit", agg.NetProfit, "-99")
	})

	t.Run("empty period", func(t *testing.T) {
		agg := Aggregate(sales, expenses, inventory, 2025, 12)

		assertAmount(t, "Revenue", agg.Revenue, "0")
		assertAmount(t, "NetProfit", agg.NetProfit, "0")
		if agg.HoursWorked != 0 {
			t.Errorf("HoursWorked = %v, want 0", agg.HoursWorked)
		}
	})
}

func TestAggregate_Pure(t *testing.T) {
	march := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	sales := []models.Sale{saleOn(1, 1, "300", "143.10", march)}
	expenses := []models.Expense{expenseOn(1, "30", march)}
	inventory := []models.InventoryItem{{ID: 1, HoursSpent: 4}}

	first := Aggregate(sales, expenses, inventory, 2025, 3)
	second := Aggregate(sales, expenses, inventory, 2025, 3)

	if !first.Revenue.Equal(second.Revenue) || !first.NetProfit.Equal(second.NetProfit) ||
		first.HoursWorked != second.HoursWorked {
		t.Errorf("repeated aggregation diverged: %+v vs %+v", first, second)
	}
	if !sales[0].FinalPrice.Equal(decimal.RequireFromString("300")) {
		t.Errorf("input sale mutated: %s", sales[0].FinalPrice)
	}
}

func TestSaleYears(t *testing.T) {
	sales := []models.Sale{
		saleOn(1, 1, "10", "5", time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)),
		saleOn(2, 2, "10", "5", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		saleOn(3, 3, "10", "5", time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC)),
		saleOn(4, 4, "10", "5", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
	}

	years := SaleYears(sales)
	want := []int{2025, 2024, 2023}
	if len(years) != len(want) {
		t.Fatalf("years = %v, want %v", years, want)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Fatalf("years = %v, want %v", years, want)
		}
	}
}
