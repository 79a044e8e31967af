package model

import "github.com/shopspring/decimal"

type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

// Matches reports whether task belongs to the subset selected by f.
func (f Filter) Matches(task Task) bool {
	switch f {
	case FilterActive:
		return !task.Completed
	case FilterCompleted:
		return task.Completed
	default:
		return true
	}
}

type Transaction struct {
	ID       int64           `json:"id"`
	Date     string          `json:"date"`
	Merchant string          `json:"merchant"`
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Icon     string          `json:"icon"`
	Style    string          `json:"style"`
	Report   string          `json:"report"`
}

type Tab string

const (
	TabDashboard    Tab = "dashboard"
	TabTransactions Tab = "transactions"
	TabScan         Tab = "scan"
	TabDrives       Tab = "drives"
	TabReports      Tab = "reports"
)

var Tabs = []Tab{TabDashboard, TabTransactions, TabScan, TabDrives, TabReports}

func (t Tab) Valid() bool {
	for _, tab := range Tabs {
		if tab == t {
			return true
		}
	}
	return false
}

func (t Tab) Label() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabTransactions:
		return "Transactions"
	case TabScan:
		return "Scan"
	case TabDrives:
		return "Drives"
	case TabReports:
		return "Reports"
	default:
		return string(t)
	}
}
