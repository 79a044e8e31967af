package ledger

import (
	"strings"

	"github.com/Joseda-hg/lazypocket/internal/model"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

type DateGroup struct {
	Date         string
	Transactions []model.Transaction
	Total        decimal.Decimal
}

// GroupByDate buckets transactions by exact date label. Groups appear in the
// order their date is first seen; members keep list order.
func GroupByDate(transactions []model.Transaction) []DateGroup {
	indexByDate := make(map[string]int)
	groups := make([]DateGroup, 0)
	for _, tx := range transactions {
		index, ok := indexByDate[tx.Date]
		if !ok {
			index = len(groups)
			indexByDate[tx.Date] = index
			groups = append(groups, DateGroup{Date: tx.Date, Total: decimal.Zero})
		}
		groups[index].Transactions = append(groups[index].Transactions, tx)
		groups[index].Total = groups[index].Total.Add(tx.Amount)
	}
	return groups
}

// Search keeps transactions whose merchant, category or report contains
// query, ignoring case.
func Search(transactions []model.Transaction, query string) []model.Transaction {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return transactions
	}

	result := make([]model.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		haystack := strings.ToLower(tx.Merchant + "\n" + tx.Category + "\n" + tx.Report)
		if strings.Contains(haystack, needle) {
			result = append(result, tx)
		}
	}
	return result
}

// FormatAmount renders amount as "<currency> 1,234.50".
func FormatAmount(currency string, amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}
	whole := rounded.IntPart()
	fraction := rounded.StringFixed(2)
	fraction = fraction[strings.IndexByte(fraction, '.'):]
	return currency + " " + sign + humanize.Comma(whole) + fraction
}
