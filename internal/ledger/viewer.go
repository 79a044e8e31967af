package ledger

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Joseda-hg/lazypocket/internal/model"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const groupCacheSize = 64

const (
	BannerTitle   = "Import Email Receipts"
	BannerMessage = "Forward to: upload@easy-expense.com"
)

// Viewer is the display state of the transactions screen. Changing tab or
// query never reloads from the source.
type Viewer struct {
	mu       sync.RWMutex
	source   Source
	logger   *zap.Logger
	currency string

	transactions []model.Transaction
	tab          model.Tab
	query        string

	// generation changes on every Load, so groups computed from an older
	// list can never be served after a reload.
	generation uint64
	groups     *lru.Cache[groupKey, []DateGroup]
}

type groupKey struct {
	generation uint64
	query      string
}

func NewViewer(source Source, currency string, logger *zap.Logger) (*Viewer, error) {
	cache, err := lru.New[groupKey, []DateGroup](groupCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create group cache: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Viewer{
		source:   source,
		logger:   logger,
		currency: currency,
		tab:      model.TabTransactions,
		groups:   cache,
	}, nil
}

func (v *Viewer) Load(ctx context.Context) error {
	transactions, err := v.source.Transactions(ctx)
	if err != nil {
		return fmt.Errorf("load transactions: %w", err)
	}

	v.mu.Lock()
	v.transactions = transactions
	v.generation++
	v.groups.Purge()
	v.mu.Unlock()

	v.logger.Info("transactions loaded", zap.Int("count", len(transactions)))
	return nil
}

func (v *Viewer) Tab() model.Tab {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.tab
}

func (v *Viewer) SelectTab(tab model.Tab) error {
	if !tab.Valid() {
		return fmt.Errorf("unknown tab %q", tab)
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tab = tab
	return nil
}

func (v *Viewer) NextTab() model.Tab {
	return v.shiftTab(1)
}

func (v *Viewer) PrevTab() model.Tab {
	return v.shiftTab(-1)
}

func (v *Viewer) shiftTab(delta int) model.Tab {
	v.mu.Lock()
	defer v.mu.Unlock()

	index := 0
	for i, tab := range model.Tabs {
		if tab == v.tab {
			index = i
			break
		}
	}
	index = (index + delta + len(model.Tabs)) % len(model.Tabs)
	v.tab = model.Tabs[index]
	return v.tab
}

func (v *Viewer) Query() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.query
}

func (v *Viewer) SetQuery(query string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = strings.TrimSpace(query)
}

func (v *Viewer) Transactions() []model.Transaction {
	v.mu.RLock()
	defer v.mu.RUnlock()
	result := make([]model.Transaction, len(v.transactions))
	copy(result, v.transactions)
	return result
}

// Groups returns the date groups for the current query.
func (v *Viewer) Groups() []DateGroup {
	return v.GroupsFor(v.Query())
}

// GroupsFor groups the transactions matching query without touching the
// viewer's own query.
func (v *Viewer) GroupsFor(query string) []DateGroup {
	v.mu.RLock()
	key := groupKey{generation: v.generation, query: strings.ToLower(strings.TrimSpace(query))}
	transactions := v.transactions
	v.mu.RUnlock()

	if cached, ok := v.groups.Get(key); ok {
		return cached
	}
	groups := GroupByDate(Search(transactions, key.query))
	v.groups.Add(key, groups)
	return groups
}

func (v *Viewer) FormatAmount(tx model.Transaction) string {
	return FormatAmount(v.currency, tx.Amount)
}

func (v *Viewer) Currency() string {
	return v.currency
}
