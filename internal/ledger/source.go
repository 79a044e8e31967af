package ledger

import (
	"context"

	"github.com/Joseda-hg/lazypocket/internal/model"
	"github.com/shopspring/decimal"
)

type Source interface {
	Transactions(ctx context.Context) ([]model.Transaction, error)
}

// StaticSource serves a fixed list.
type StaticSource []model.Transaction

func (s StaticSource) Transactions(context.Context) ([]model.Transaction, error) {
	result := make([]model.Transaction, len(s))
	copy(result, s)
	return result, nil
}

// DemoTransactions is the built-in sample ledger.
func DemoTransactions() StaticSource {
	return StaticSource{
		{ID: 1, Date: "December 13, 2025", Merchant: "Farley", Category: "Supplies & Materials", Amount: decimal.RequireFromString("9.20"), Icon: "bag", Style: "purple", Report: "Report #1"},
		{ID: 2, Date: "December 13, 2025", Merchant: "Eco Shop", Category: "Office Supplies", Amount: decimal.RequireFromString("24.50"), Icon: "bag", Style: "green", Report: "Report #1"},
		{ID: 3, Date: "December 12, 2025", Merchant: "Shell Station", Category: "Fuel & Transportation", Amount: decimal.RequireFromString("85.00"), Icon: "car", Style: "yellow", Report: "Report #2"},
		{ID: 4, Date: "December 12, 2025", Merchant: "KFC Damansara", Category: "Meals & Entertainment", Amount: decimal.RequireFromString("32.90"), Icon: "utensils", Style: "red", Report: "Report #2"},
		{ID: 5, Date: "December 11, 2025", Merchant: "Starbucks KLCC", Category: "Meals & Entertainment", Amount: decimal.RequireFromString("18.50"), Icon: "coffee", Style: "orange", Report: "Report #3"},
	}
}
