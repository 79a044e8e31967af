package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Joseda-hg/lazypocket/internal/db"
	"github.com/Joseda-hg/lazypocket/internal/ledger"
	"github.com/Joseda-hg/lazypocket/internal/model"
	"github.com/Joseda-hg/lazypocket/internal/todo"
	"github.com/jesseduffield/gocui"
)

func TestSubmitInputAddsTaskAndClearsInput(t *testing.T) {
	ui, _ := newTestUI(t)

	if err := ui.startInput(nil, nil); err != nil {
		t.Fatalf("start input: %v", err)
	}
	if !ui.editing {
		t.Fatalf("expected editing mode")
	}
	typeText(ui, "  Buy milk ")
	if err := ui.submitInput(nil, nil); err != nil {
		t.Fatalf("submit: %v", err)
	}

	tasks := ui.manager.Tasks()
	if len(tasks) != 1 || tasks[0].Text != "Buy milk" {
		t.Fatalf("unexpected tasks: %+v", tasks)
	}
	if ui.manager.Input() != "" {
		t.Fatalf("expected input to be cleared, got %q", ui.manager.Input())
	}
	if !ui.editing {
		t.Fatalf("expected to stay in editing mode after submit")
	}

	if err := ui.cancelInput(nil, nil); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if ui.editing {
		t.Fatalf("expected editing mode to end")
	}
}

func TestSubmitBlankInputKeepsTasks(t *testing.T) {
	ui, _ := newTestUI(t)
	_ = ui.startInput(nil, nil)
	typeText(ui, "   ")

	if err := ui.submitInput(nil, nil); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(ui.manager.Tasks()) != 0 {
		t.Fatalf("expected no tasks")
	}
	if ui.manager.Input() != "   " {
		t.Fatalf("expected whitespace input to be kept, got %q", ui.manager.Input())
	}
}

func TestInputEditorCapsLength(t *testing.T) {
	ui, _ := newTestUI(t)
	_ = ui.startInput(nil, nil)

	typeText(ui, strings.Repeat("a", todo.MaxTextLength+20))
	if got := len([]rune(ui.manager.Input())); got != todo.MaxTextLength {
		t.Fatalf("expected input capped at %d, got %d", todo.MaxTextLength, got)
	}

	editor := &inputEditor{ui: ui}
	editor.Edit(nil, gocui.KeyBackspace2, 0, gocui.ModNone)
	if got := len([]rune(ui.manager.Input())); got != todo.MaxTextLength-1 {
		t.Fatalf("expected backspace to remove one rune, got %d", got)
	}
	editor.Edit(nil, gocui.KeyCtrlU, 0, gocui.ModNone)
	if ui.manager.Input() != "" {
		t.Fatalf("expected ctrl+u to clear input")
	}
}

func TestInputEditorIgnoredOutsideEditing(t *testing.T) {
	ui, _ := newTestUI(t)
	editor := &inputEditor{ui: ui}
	if editor.Edit(nil, 0, 'a', gocui.ModNone) {
		t.Fatalf("expected editor to ignore keys when not editing")
	}
}

func TestToggleAndDeleteSelectedTask(t *testing.T) {
	ui, store := newTestUI(t)
	addTasks(t, ui, "first", "second", "third")

	// newest first: third, second, first
	ui.selected = 1
	if err := ui.toggleTask(nil, nil); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !findTask(t, ui, "second").Completed {
		t.Fatalf("expected 'second' to be completed")
	}

	ui.selected = 2
	if err := ui.deleteTask(nil, nil); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(ui.manager.Tasks()) != 2 {
		t.Fatalf("expected 2 tasks after delete")
	}
	if ui.selected != 1 {
		t.Fatalf("expected selection to be clamped to 1, got %d", ui.selected)
	}

	persisted, err := todo.NewKVStorage(store).Read(context.Background())
	if err != nil {
		t.Fatalf("read storage: %v", err)
	}
	if len(persisted) != 2 {
		t.Fatalf("expected 2 persisted tasks, got %d", len(persisted))
	}
}

func TestClearCompletedAndFilterKeys(t *testing.T) {
	ui, _ := newTestUI(t)
	addTasks(t, ui, "a", "b", "c")
	ui.selected = 0
	_ = ui.toggleTask(nil, nil)

	if err := ui.selectNumber(3)(nil, nil); err != nil {
		t.Fatalf("select completed filter: %v", err)
	}
	if ui.manager.Filter() != model.FilterCompleted {
		t.Fatalf("expected completed filter, got %q", ui.manager.Filter())
	}
	if len(ui.manager.View()) != 1 {
		t.Fatalf("expected one completed task in view")
	}

	if err := ui.cycleFilter(nil, nil); err != nil {
		t.Fatalf("cycle filter: %v", err)
	}
	if ui.manager.Filter() != model.FilterAll {
		t.Fatalf("expected cycle to wrap to all, got %q", ui.manager.Filter())
	}

	if err := ui.clearCompleted(nil, nil); err != nil {
		t.Fatalf("clear completed: %v", err)
	}
	if counts := ui.manager.Counts(); counts.All != 2 || counts.Completed != 0 {
		t.Fatalf("unexpected counts after clear: %+v", counts)
	}
}

func TestMoveSelectionStaysInRange(t *testing.T) {
	ui, _ := newTestUI(t)
	addTasks(t, ui, "a", "b")

	_ = ui.moveUp(nil, nil)
	if ui.selected != 0 {
		t.Fatalf("expected selection to stay at 0")
	}
	_ = ui.moveDown(nil, nil)
	_ = ui.moveDown(nil, nil)
	if ui.selected != 1 {
		t.Fatalf("expected selection to stop at 1, got %d", ui.selected)
	}
}

func TestKeysIgnoredWhileEditing(t *testing.T) {
	ui, _ := newTestUI(t)
	addTasks(t, ui, "a")
	_ = ui.startInput(nil, nil)

	_ = ui.toggleTask(nil, nil)
	if ui.manager.Tasks()[0].Completed {
		t.Fatalf("expected toggle to be ignored while editing")
	}
	_ = ui.showLedger(nil, nil)
	if ui.screen != screenTasks {
		t.Fatalf("expected screen change to be ignored while editing")
	}
	if err := ui.quit(nil, nil); err != nil {
		t.Fatalf("expected quit to be ignored while editing, got %v", err)
	}
}

func TestLedgerTabsAndSearch(t *testing.T) {
	ui, _ := newTestUI(t)
	if err := ui.switchScreen(nil, nil); err != nil {
		t.Fatalf("switch screen: %v", err)
	}
	if ui.screen != screenLedger {
		t.Fatalf("expected ledger screen")
	}

	if err := ui.selectNumber(5)(nil, nil); err != nil {
		t.Fatalf("select tab: %v", err)
	}
	if ui.viewer.Tab() != model.TabReports {
		t.Fatalf("expected reports tab, got %q", ui.viewer.Tab())
	}
	if ui.manager.Filter() != model.FilterAll {
		t.Fatalf("expected digit keys on the ledger to leave the filter alone")
	}
	_ = ui.nextTab(nil, nil)
	if ui.viewer.Tab() != model.TabDashboard {
		t.Fatalf("expected wrap to dashboard, got %q", ui.viewer.Tab())
	}
	_ = ui.prevTab(nil, nil)
	if ui.viewer.Tab() != model.TabReports {
		t.Fatalf("expected wrap back to reports, got %q", ui.viewer.Tab())
	}

	if err := ui.startSearch(nil, nil); err != nil {
		t.Fatalf("start search: %v", err)
	}
	editor := &searchEditor{ui: ui}
	for _, ch := range "kfc" {
		editor.Edit(nil, 0, ch, gocui.ModNone)
	}
	if err := ui.submitSearch(nil, nil); err != nil {
		t.Fatalf("submit search: %v", err)
	}
	if ui.searchActive {
		t.Fatalf("expected search popup to close")
	}
	groups := ui.viewer.Groups()
	if len(groups) != 1 || groups[0].Transactions[0].Merchant != "KFC Damansara" {
		t.Fatalf("unexpected search result: %+v", groups)
	}
}

func TestHelpToggle(t *testing.T) {
	ui, _ := newTestUI(t)
	_ = ui.toggleHelp(nil, nil)
	if !ui.helpActive {
		t.Fatalf("expected help to open")
	}
	_ = ui.moveDown(nil, nil)
	if err := ui.closeHelp(nil, nil); err != nil {
		t.Fatalf("close help: %v", err)
	}
	if ui.helpActive {
		t.Fatalf("expected help to close")
	}
}

func TestQuitOnDoneStopsLoopWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	gui := &recordingUpdater{}

	quitOnDone(ctx, make(chan struct{}), gui)
	if gui.err == nil || !errors.Is(gui.err, gocui.ErrQuit) {
		t.Fatalf("expected an update returning ErrQuit, got %v", gui.err)
	}
}

func TestQuitOnDoneReturnsAfterLoopExit(t *testing.T) {
	done := make(chan struct{})
	close(done)
	gui := &recordingUpdater{}

	quitOnDone(context.Background(), done, gui)
	if gui.calls != 0 {
		t.Fatalf("expected no update after the loop exited, got %d", gui.calls)
	}
}

type recordingUpdater struct {
	calls int
	err   error
}

func (r *recordingUpdater) Update(f func(*gocui.Gui) error) {
	r.calls++
	r.err = f(nil)
}

func TestFormatFilterBar(t *testing.T) {
	got := formatFilterBar(model.FilterActive, todo.Counts{All: 3, Active: 2, Completed: 1})
	want := "1 All (3) | [2 Active (2)] | 3 Completed (1)"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestEmptyStateLines(t *testing.T) {
	lines := emptyStateLines(model.FilterAll, 0)
	if lines[0] != "No tasks yet" || lines[1] != "Add a new task to get started!" {
		t.Fatalf("unexpected empty state: %v", lines)
	}
	lines = emptyStateLines(model.FilterCompleted, 4)
	if lines[0] != "No tasks found" || lines[1] != "No completed tasks to show. Try adjusting your filter." {
		t.Fatalf("unexpected filtered empty state: %v", lines)
	}
}

func TestSmallHelpers(t *testing.T) {
	if got := clearCompletedHint(0); got != "" {
		t.Fatalf("expected no hint, got %q", got)
	}
	if got := clearCompletedHint(2); got != "C clear 2 completed tasks" {
		t.Fatalf("unexpected hint %q", got)
	}
	if got := charactersRemaining(""); got != "" {
		t.Fatalf("expected no counter for empty input, got %q", got)
	}
	if got := charactersRemaining("abc"); got != "97 characters remaining" {
		t.Fatalf("unexpected counter %q", got)
	}
	if got := formatTaskLine(model.Task{Text: "x", Completed: true, CreatedAt: "t"}, true, true); got != "> [x] x  (t)" {
		t.Fatalf("unexpected task line %q", got)
	}
	if got := formatTabBar(model.TabTransactions); !strings.Contains(got, "[2 Transactions]") {
		t.Fatalf("expected active tab to be marked, got %q", got)
	}
}

func TestLedgerLines(t *testing.T) {
	viewer := newTestViewer(t)
	lines := ledgerLines(viewer.Groups(), viewer.FormatAmount, viewer.Currency(), 40)

	if !strings.HasPrefix(lines[0], "December 13, 2025") || !strings.HasSuffix(lines[0], "RM 33.70") {
		t.Fatalf("unexpected group header %q", lines[0])
	}
	if !strings.Contains(lines[1], "Farley") || !strings.HasSuffix(lines[1], "RM 9.20") {
		t.Fatalf("unexpected transaction line %q", lines[1])
	}
	if len([]rune(lines[1])) != 40 {
		t.Fatalf("expected line aligned to width 40, got %d", len([]rune(lines[1])))
	}
}

func newTestUI(t *testing.T) (*UI, *db.MemoryStore) {
	t.Helper()
	store := db.NewMemoryStore()
	manager := todo.NewManager(todo.NewKVStorage(store))
	manager.Restore(context.Background())
	return New(manager, newTestViewer(t), nil), store
}

func newTestViewer(t *testing.T) *ledger.Viewer {
	t.Helper()
	viewer, err := ledger.NewViewer(ledger.DemoTransactions(), "RM", nil)
	if err != nil {
		t.Fatalf("new viewer: %v", err)
	}
	if err := viewer.Load(context.Background()); err != nil {
		t.Fatalf("load viewer: %v", err)
	}
	return viewer
}

func typeText(ui *UI, text string) {
	editor := &inputEditor{ui: ui}
	for _, ch := range text {
		if ch == ' ' {
			editor.Edit(nil, gocui.KeySpace, 0, gocui.ModNone)
			continue
		}
		editor.Edit(nil, 0, ch, gocui.ModNone)
	}
}

func addTasks(t *testing.T, ui *UI, texts ...string) {
	t.Helper()
	for _, text := range texts {
		if _, _, err := ui.manager.Add(context.Background(), text); err != nil {
			t.Fatalf("add %q: %v", text, err)
		}
	}
}

func findTask(t *testing.T, ui *UI, text string) model.Task {
	t.Helper()
	for _, task := range ui.manager.Tasks() {
		if task.Text == text {
			return task
		}
	}
	t.Fatalf("task %q not found", text)
	return model.Task{}
}
