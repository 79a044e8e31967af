package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/Joseda-hg/lazypocket/internal/model"
	"github.com/shopspring/decimal"
)

func TestGroupByDateKeepsFirstSeenOrder(t *testing.T) {
	transactions := []model.Transaction{
		{ID: 1, Date: "December 12, 2025", Merchant: "a", Amount: decimal.RequireFromString("1.10")},
		{ID: 2, Date: "December 13, 2025", Merchant: "b", Amount: decimal.RequireFromString("2.00")},
		{ID: 3, Date: "December 12, 2025", Merchant: "c", Amount: decimal.RequireFromString("3.35")},
		{ID: 4, Date: "december 12, 2025", Merchant: "d", Amount: decimal.RequireFromString("4.00")},
	}

	groups := GroupByDate(transactions)
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}
	if groups[0].Date != "December 12, 2025" || groups[1].Date != "December 13, 2025" || groups[2].Date != "december 12, 2025" {
		t.Fatalf("unexpected group order: %q %q %q", groups[0].Date, groups[1].Date, groups[2].Date)
	}
	if len(groups[0].Transactions) != 2 || groups[0].Transactions[0].ID != 1 || groups[0].Transactions[1].ID != 3 {
		t.Fatalf("unexpected members of first group: %+v", groups[0].Transactions)
	}
	if got := groups[0].Total.StringFixed(2); got != "4.45" {
		t.Fatalf("expected total 4.45, got %s", got)
	}
}

func TestGroupByDateEmpty(t *testing.T) {
	if groups := GroupByDate(nil); len(groups) != 0 {
		t.Fatalf("expected no groups, got %d", len(groups))
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"9.2":     "RM 9.20",
		"85":      "RM 85.00",
		"1234.5":  "RM 1,234.50",
		"0.005":   "RM 0.01",
		"-18.5":   "RM -18.50",
		"1000000": "RM 1,000,000.00",
	}
	for input, want := range cases {
		if got := FormatAmount("RM", decimal.RequireFromString(input)); got != want {
			t.Fatalf("FormatAmount(%s) = %q, want %q", input, got, want)
		}
	}
}

func TestSearchMatchesMerchantCategoryReport(t *testing.T) {
	transactions, _ := DemoTransactions().Transactions(context.Background())

	if got := Search(transactions, "  "); len(got) != len(transactions) {
		t.Fatalf("expected blank query to keep all, got %d", len(got))
	}
	if got := Search(transactions, "klcc"); len(got) != 1 || got[0].Merchant != "Starbucks KLCC" {
		t.Fatalf("expected merchant match, got %+v", got)
	}
	if got := Search(transactions, "meals"); len(got) != 2 {
		t.Fatalf("expected 2 category matches, got %d", len(got))
	}
	if got := Search(transactions, "report #1"); len(got) != 2 {
		t.Fatalf("expected 2 report matches, got %d", len(got))
	}
}

func TestViewerGroupsDemoData(t *testing.T) {
	viewer := newTestViewer(t, DemoTransactions())

	groups := viewer.Groups()
	if len(groups) != 3 {
		t.Fatalf("expected 3 date groups, got %d", len(groups))
	}
	want := []string{"December 13, 2025", "December 12, 2025", "December 11, 2025"}
	for i, group := range groups {
		if group.Date != want[i] {
			t.Fatalf("group %d: expected %q, got %q", i, want[i], group.Date)
		}
	}
	if got := viewer.FormatAmount(groups[0].Transactions[0]); got != "RM 9.20" {
		t.Fatalf("expected 'RM 9.20', got %q", got)
	}

	viewer.SetQuery("shell")
	filtered := viewer.Groups()
	if len(filtered) != 1 || filtered[0].Date != "December 12, 2025" || len(filtered[0].Transactions) != 1 {
		t.Fatalf("unexpected filtered groups: %+v", filtered)
	}
	if len(viewer.GroupsFor("")) != 3 {
		t.Fatalf("expected GroupsFor to ignore the viewer query")
	}
}

func TestViewerTabsDoNotReload(t *testing.T) {
	source := &countingSource{transactions: DemoTransactions()}
	viewer := newTestViewer(t, source)

	if viewer.Tab() != model.TabTransactions {
		t.Fatalf("expected default tab 'transactions', got %q", viewer.Tab())
	}
	for _, tab := range model.Tabs {
		if err := viewer.SelectTab(tab); err != nil {
			t.Fatalf("select %s: %v", tab, err)
		}
		_ = viewer.Groups()
	}
	if err := viewer.SelectTab("settings"); err == nil {
		t.Fatalf("expected unknown tab to be rejected")
	}
	if source.calls != 1 {
		t.Fatalf("expected a single source read, got %d", source.calls)
	}
}

func TestViewerTabCycling(t *testing.T) {
	viewer := newTestViewer(t, DemoTransactions())

	if err := viewer.SelectTab(model.TabReports); err != nil {
		t.Fatalf("select: %v", err)
	}
	if next := viewer.NextTab(); next != model.TabDashboard {
		t.Fatalf("expected wrap to dashboard, got %q", next)
	}
	if prev := viewer.PrevTab(); prev != model.TabReports {
		t.Fatalf("expected wrap back to reports, got %q", prev)
	}
}

func TestViewerReloadPurgesCache(t *testing.T) {
	source := &countingSource{transactions: DemoTransactions()[:1]}
	viewer := newTestViewer(t, source)
	if len(viewer.Groups()) != 1 {
		t.Fatalf("expected 1 group")
	}

	source.transactions = DemoTransactions()
	if err := viewer.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(viewer.Groups()) != 3 {
		t.Fatalf("expected 3 groups after reload")
	}
}

func TestViewerIgnoresGroupsFromBeforeReload(t *testing.T) {
	source := &countingSource{transactions: DemoTransactions()[:1]}
	viewer := newTestViewer(t, source)
	staleKey := groupKey{generation: viewer.generation, query: ""}
	stale := viewer.Groups()

	source.transactions = DemoTransactions()
	if err := viewer.Load(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	// a reader that grouped the old list finishes after the reload
	viewer.groups.Add(staleKey, stale)

	if got := len(viewer.Groups()); got != 3 {
		t.Fatalf("expected groups of the reloaded list, got %d", got)
	}
}

func TestViewerLoadError(t *testing.T) {
	viewer, err := NewViewer(&countingSource{err: errors.New("boom")}, "RM", nil)
	if err != nil {
		t.Fatalf("new viewer: %v", err)
	}
	if err := viewer.Load(context.Background()); err == nil {
		t.Fatalf("expected load error")
	}
}

type countingSource struct {
	transactions StaticSource
	err          error
	calls        int
}

func (s *countingSource) Transactions(ctx context.Context) ([]model.Transaction, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.transactions.Transactions(ctx)
}

func newTestViewer(t *testing.T, source Source) *Viewer {
	t.Helper()
	viewer, err := NewViewer(source, "RM", nil)
	if err != nil {
		t.Fatalf("new viewer: %v", err)
	}
	if err := viewer.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return viewer
}
