package todo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/Joseda-hg/lazypocket/internal/model"
	"go.uber.org/zap"
)

const (
	MaxTextLength = 100

	// CreatedAtLayout mirrors a en-US locale date/time string.
	CreatedAtLayout = "1/2/2006, 3:04:05 PM"
)

var (
	ErrPersist       = errors.New("persist tasks")
	ErrUnknownFilter = errors.New("unknown filter")
)

type Counts struct {
	All       int
	Active    int
	Completed int
}

// Manager owns the task collection and writes it through to Storage on
// every change. The durable copy is written before the in-memory copy is
// replaced, so a failed write leaves both untouched.
type Manager struct {
	mu      sync.RWMutex
	storage Storage
	logger  *zap.Logger
	now     func() time.Time
	ids     *IDGenerator

	tasks  []model.Task
	input  string
	filter model.Filter
}

type Option func(*Manager)

func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func NewManager(storage Storage, opts ...Option) *Manager {
	m := &Manager{
		storage: storage,
		logger:  zap.NewNop(),
		now:     time.Now,
		filter:  model.FilterAll,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.ids = NewIDGenerator(m.now)
	return m
}

// Restore loads the persisted collection. Missing, unreadable or malformed
// data all start the session with an empty list; malformed data is also
// removed from storage so it matches the empty list.
func (m *Manager) Restore(ctx context.Context) {
	tasks, err := m.storage.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrDecode) {
			m.logger.Warn("discarding malformed stored tasks", zap.Error(err))
			if clearErr := m.storage.Clear(ctx); clearErr != nil {
				m.logger.Error("failed to discard malformed stored tasks", zap.Error(clearErr))
			}
		} else {
			m.logger.Error("failed to load tasks from storage", zap.Error(err))
		}
		tasks = nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.tasks = tasks
	for _, task := range tasks {
		m.ids.Observe(task.ID)
	}
	m.logger.Info("tasks restored", zap.Int("count", len(tasks)))
}

func (m *Manager) Input() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.input
}

// SetInput replaces the pending input, keeping at most MaxTextLength runes.
func (m *Manager) SetInput(value string) {
	if utf8.RuneCountInString(value) > MaxTextLength {
		value = string([]rune(value)[:MaxTextLength])
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.input = value
}

// Submit adds the pending input as a task.
func (m *Manager) Submit(ctx context.Context) (model.Task, bool, error) {
	return m.Add(ctx, m.Input())
}

// Add prepends a new task. Text that is empty after trimming is ignored and
// reported with ok == false.
func (m *Manager) Add(ctx context.Context, text string) (model.Task, bool, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return model.Task{}, false, nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	task := model.Task{
		ID:        m.ids.Next(),
		Text:      trimmed,
		Completed: false,
		CreatedAt: m.now().Format(CreatedAtLayout),
	}

	next := make([]model.Task, 0, len(m.tasks)+1)
	next = append(next, task)
	next = append(next, m.tasks...)

	if err := m.commit(ctx, next); err != nil {
		return model.Task{}, false, err
	}
	m.input = ""
	m.logger.Debug("task added", zap.Int64("id", task.ID))
	return task, true, nil
}

func (m *Manager) Toggle(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	index := m.indexOf(id)
	if index < 0 {
		return nil
	}

	next := m.snapshot()
	next[index].Completed = !next[index].Completed
	if err := m.commit(ctx, next); err != nil {
		return err
	}
	m.logger.Debug("task toggled", zap.Int64("id", id), zap.Bool("completed", next[index].Completed))
	return nil
}

func (m *Manager) Remove(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	index := m.indexOf(id)
	if index < 0 {
		return nil
	}

	next := make([]model.Task, 0, len(m.tasks)-1)
	next = append(next, m.tasks[:index]...)
	next = append(next, m.tasks[index+1:]...)
	if err := m.commit(ctx, next); err != nil {
		return err
	}
	m.logger.Debug("task removed", zap.Int64("id", id))
	return nil
}

// ClearCompleted drops every completed task in one write and returns how
// many were removed.
func (m *Manager) ClearCompleted(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := make([]model.Task, 0, len(m.tasks))
	for _, task := range m.tasks {
		if !task.Completed {
			next = append(next, task)
		}
	}
	removed := len(m.tasks) - len(next)
	if removed == 0 {
		return 0, nil
	}

	if err := m.commit(ctx, next); err != nil {
		return 0, err
	}
	m.logger.Debug("completed tasks cleared", zap.Int("removed", removed))
	return removed, nil
}

func (m *Manager) Filter() model.Filter {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.filter
}

func (m *Manager) SetFilter(filter model.Filter) error {
	if !filter.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownFilter, filter)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.filter = filter
	return nil
}

// View returns the tasks selected by the current filter in collection order.
func (m *Manager) View() []model.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filterTasks(m.tasks, m.filter)
}

// ViewOf applies filter without changing the manager's own selection.
func (m *Manager) ViewOf(filter model.Filter) []model.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return filterTasks(m.tasks, filter)
}

func (m *Manager) Tasks() []model.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot()
}

func (m *Manager) Counts() Counts {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := Counts{All: len(m.tasks)}
	for _, task := range m.tasks {
		if task.Completed {
			counts.Completed++
		} else {
			counts.Active++
		}
	}
	return counts
}

// commit persists next, retrying once, and only then adopts it.
func (m *Manager) commit(ctx context.Context, next []model.Task) error {
	err := m.storage.Write(ctx, next)
	if err != nil {
		m.logger.Warn("task write failed, retrying", zap.Error(err))
		err = m.storage.Write(ctx, next)
	}
	if err != nil {
		m.logger.Error("task write failed", zap.Error(err), zap.Int("count", len(next)))
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	m.tasks = next
	return nil
}

func (m *Manager) indexOf(id int64) int {
	for i, task := range m.tasks {
		if task.ID == id {
			return i
		}
	}
	return -1
}

func (m *Manager) snapshot() []model.Task {
	result := make([]model.Task, len(m.tasks))
	copy(result, m.tasks)
	return result
}

func filterTasks(tasks []model.Task, filter model.Filter) []model.Task {
	result := make([]model.Task, 0, len(tasks))
	for _, task := range tasks {
		if filter.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}
