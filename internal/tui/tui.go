package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/Joseda-hg/lazypocket/internal/ledger"
	"github.com/Joseda-hg/lazypocket/internal/model"
	"github.com/Joseda-hg/lazypocket/internal/todo"
	goerrors "github.com/go-errors/errors"
	"github.com/jesseduffield/gocui"
	"go.uber.org/zap"
)

const (
	viewHeader  = "header"
	viewFooter  = "footer"
	viewInput   = "input"
	viewFilters = "filters"
	viewTasks   = "tasks"
	viewBanner  = "banner"
	viewLedger  = "ledger"
	viewTabs    = "tabs"
	viewSearch  = "search"
	viewHelp    = "help"
)

const (
	screenTasks  = "tasks"
	screenLedger = "ledger"
)

type UI struct {
	manager *todo.Manager
	viewer  *ledger.Viewer
	logger  *zap.Logger
	gui     *gocui.Gui

	screen       string
	selected     int
	ledgerOffset int
	ledgerWidth  int

	editing      bool
	searchActive bool
	searchValue  string
	helpActive   bool
	status       string

	inputEditor  *inputEditor
	searchEditor *searchEditor
}

func New(manager *todo.Manager, viewer *ledger.Viewer, logger *zap.Logger) *UI {
	if logger == nil {
		logger = zap.NewNop()
	}
	ui := &UI{
		manager:     manager,
		viewer:      viewer,
		logger:      logger,
		screen:      screenTasks,
		ledgerWidth: 60,
	}
	ui.inputEditor = &inputEditor{ui: ui}
	ui.searchEditor = &searchEditor{ui: ui}
	return ui
}

// Run blocks in the gocui main loop until the user quits or ctx is done.
func Run(ctx context.Context, manager *todo.Manager, viewer *ledger.Viewer, logger *zap.Logger) error {
	gui, err := gocui.NewGui(gocui.NewGuiOpts{OutputMode: gocui.OutputNormal})
	if err != nil {
		return err
	}
	defer gui.Close()

	ui := New(manager, viewer, logger)
	ui.gui = gui
	gui.Mouse = true

	gui.SetManagerFunc(ui.layout)
	if err := ui.bindKeys(gui); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go quitOnDone(ctx, done, gui)

	if err := gui.MainLoop(); err != nil && !goerrors.Is(err, gocui.ErrQuit) {
		return err
	}
	return nil
}

// quitOnDone stops the main loop once ctx is cancelled, unless the loop has
// already returned and closed done.
func quitOnDone(ctx context.Context, done <-chan struct{}, gui updater) {
	select {
	case <-ctx.Done():
		gui.Update(func(*gocui.Gui) error {
			return gocui.ErrQuit
		})
	case <-done:
	}
}

type updater interface {
	Update(func(*gocui.Gui) error)
}

func (u *UI) bindKeys(gui *gocui.Gui) error {
	bindings := []struct {
		view    string
		key     any
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{"", gocui.KeyCtrlC, u.quit},
		{"", 'q', u.quit},
		{"", '?', u.toggleHelp},
		{"", gocui.KeyF1, u.showTasks},
		{"", 'T', u.showTasks},
		{"", gocui.KeyF2, u.showLedger},
		{"", 'L', u.showLedger},
		{"", gocui.KeyTab, u.switchScreen},
		{"", 'r', u.reload},
		{"", '1', u.selectNumber(1)},
		{"", '2', u.selectNumber(2)},
		{"", '3', u.selectNumber(3)},
		{"", '4', u.selectNumber(4)},
		{"", '5', u.selectNumber(5)},

		{viewTasks, 'a', u.startInput},
		{viewTasks, 'i', u.startInput},
		{viewTasks, 'j', u.moveDown},
		{viewTasks, gocui.KeyArrowDown, u.moveDown},
		{viewTasks, 'k', u.moveUp},
		{viewTasks, gocui.KeyArrowUp, u.moveUp},
		{viewTasks, 'x', u.toggleTask},
		{viewTasks, gocui.KeySpace, u.toggleTask},
		{viewTasks, 'd', u.deleteTask},
		{viewTasks, 'C', u.clearCompleted},
		{viewTasks, 'f', u.cycleFilter},

		{viewInput, gocui.KeyEnter, u.submitInput},
		{viewInput, gocui.KeyEsc, u.cancelInput},

		{viewLedger, 'j', u.scrollLedgerDown},
		{viewLedger, gocui.KeyArrowDown, u.scrollLedgerDown},
		{viewLedger, 'k', u.scrollLedgerUp},
		{viewLedger, gocui.KeyArrowUp, u.scrollLedgerUp},
		{viewLedger, 'l', u.nextTab},
		{viewLedger, gocui.KeyArrowRight, u.nextTab},
		{viewLedger, 'h', u.prevTab},
		{viewLedger, gocui.KeyArrowLeft, u.prevTab},
		{viewLedger, '/', u.startSearch},

		{viewSearch, gocui.KeyEnter, u.submitSearch},
		{viewSearch, gocui.KeyEsc, u.cancelSearch},

		{viewHelp, gocui.KeyEsc, u.closeHelp},
		{viewHelp, 'q', u.closeHelp},
		{viewHelp, '?', u.closeHelp},
	}

	for _, binding := range bindings {
		if err := gui.SetKeybinding(binding.view, binding.key, gocui.ModNone, binding.handler); err != nil {
			return err
		}
	}

	if err := gui.SetViewClickBinding(&gocui.ViewMouseBinding{ViewName: viewTasks, Key: gocui.MouseLeft, Handler: func(opts gocui.ViewMouseBindingOpts) error {
		return u.onTaskClick(gui, opts)
	}}); err != nil {
		return err
	}

	for _, name := range []string{viewTasks, viewLedger} {
		if err := gui.SetKeybinding(name, gocui.MouseWheelUp, gocui.ModNone, u.scrollUp); err != nil {
			return err
		}
		if err := gui.SetKeybinding(name, gocui.MouseWheelDown, gocui.ModNone, u.scrollDown); err != nil {
			return err
		}
	}
	return nil
}

func (u *UI) layout(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()
	if maxX <= 0 || maxY <= 0 {
		return nil
	}

	headerView, err := gui.SetView(viewHeader, 0, 0, maxX-1, 0, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	headerView.Frame = false
	headerView.FgColor = gocui.ColorDefault
	u.renderHeader(headerView)

	footerY1 := max(maxY-2, 1)
	footerY0 := max(footerY1-2, 1)
	footerView, err := gui.SetView(viewFooter, 0, footerY0, maxX-1, footerY1, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	footerView.Frame = false
	footerView.Wrap = true
	footerView.FgColor = gocui.ColorDefault | gocui.AttrDim
	u.renderFooter(footerView)

	bodyTop := 1
	bodyBottom := footerY0 - 1
	if bodyBottom-bodyTop < 6 {
		return nil
	}

	if u.screen == screenLedger {
		u.deleteViews(gui, viewInput, viewFilters, viewTasks)
		if err := u.layoutLedger(gui, maxX, bodyTop, bodyBottom); err != nil {
			return err
		}
	} else {
		u.deleteViews(gui, viewBanner, viewLedger, viewTabs)
		if err := u.layoutTasks(gui, maxX, bodyTop, bodyBottom); err != nil {
			return err
		}
	}

	if u.searchActive {
		if err := u.showSearch(gui); err != nil {
			return err
		}
	} else {
		_ = gui.DeleteView(viewSearch)
	}

	if u.helpActive {
		if err := u.showHelp(gui); err != nil {
			return err
		}
	} else {
		_ = gui.DeleteView(viewHelp)
	}

	if !u.searchActive && !u.helpActive {
		_, _ = gui.SetCurrentView(u.focusView())
	}
	gui.Cursor = u.editing || u.searchActive
	return nil
}

func (u *UI) layoutTasks(gui *gocui.Gui, maxX, top, bottom int) error {
	inputView, err := gui.SetView(viewInput, 0, top, maxX-1, top+3, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		inputView.Title = "New Task"
		inputView.Wrap = false
	}
	inputView.Editable = u.editing
	inputView.KeybindOnEdit = true
	inputView.Editor = u.inputEditor
	applyViewStyle(inputView, u.editing, false)
	u.renderInput(inputView)

	filtersView, err := gui.SetView(viewFilters, 0, top+4, maxX-1, top+4, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	filtersView.Frame = false
	u.renderFilters(filtersView)

	tasksView, err := gui.SetView(viewTasks, 0, top+5, maxX-1, bottom, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		tasksView.Title = "My Tasks"
		tasksView.TitleColor = gocui.ColorCyan
	}
	applyViewStyle(tasksView, !u.editing, true)
	u.renderTasks(tasksView, !u.editing)
	return nil
}

func (u *UI) layoutLedger(gui *gocui.Gui, maxX, top, bottom int) error {
	bannerView, err := gui.SetView(viewBanner, 0, top, maxX-1, top+3, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		bannerView.FrameColor = gocui.ColorBlue
	}
	bannerView.Clear()
	fmt.Fprintln(bannerView, ledger.BannerTitle)
	fmt.Fprint(bannerView, ledger.BannerMessage)

	tabsY0 := bottom - 2
	ledgerView, err := gui.SetView(viewLedger, 0, top+4, maxX-1, tabsY0-1, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		ledgerView.TitleColor = gocui.ColorCyan
	}
	ledgerView.Title = "Transactions"
	if query := u.viewer.Query(); query != "" {
		ledgerView.Title = fmt.Sprintf("Transactions (search: %s)", query)
	}
	applyViewStyle(ledgerView, true, false)
	u.ledgerWidth = max(maxX-3, 20)
	u.renderLedger(ledgerView)

	tabsView, err := gui.SetView(viewTabs, 0, tabsY0, maxX-1, bottom, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	applyViewStyle(tabsView, false, false)
	u.renderTabs(tabsView)
	return nil
}

func (u *UI) deleteViews(gui *gocui.Gui, names ...string) {
	for _, name := range names {
		_ = gui.DeleteView(name)
	}
}

func (u *UI) focusView() string {
	if u.screen == screenLedger {
		return viewLedger
	}
	if u.editing {
		return viewInput
	}
	return viewTasks
}

func (u *UI) renderHeader(view *gocui.View) {
	view.Clear()
	tasksLabel, ledgerLabel := "[F1 Tasks]", "F2 Ledger"
	if u.screen == screenLedger {
		tasksLabel, ledgerLabel = "F1 Tasks", "[F2 Ledger]"
	}
	fmt.Fprintf(view, "%s %s | %s", tasksLabel, ledgerLabel, formatCounters(u.manager.Counts()))
}

func (u *UI) renderFooter(view *gocui.View) {
	view.Clear()
	view.SetOrigin(0, 0)

	if u.screen == screenLedger {
		fmt.Fprintln(view, "h/l tabs | 1-5 select tab | j/k scroll | / search | r reload | tab/F1 tasks | ? help | q quit")
	} else {
		fmt.Fprintln(view, "a add | enter save | esc cancel | x toggle | d delete | 1-3 filter | f cycle filter | tab/F2 ledger | ? help | q quit")
	}
	line := u.status
	if line == "" && u.screen == screenTasks {
		line = clearCompletedHint(u.manager.Counts().Completed)
	}
	fmt.Fprint(view, line)
}

func (u *UI) renderInput(view *gocui.View) {
	view.Clear()
	input := u.manager.Input()
	if input == "" && !u.editing {
		fmt.Fprintln(view, "Add a new task...")
	} else {
		fmt.Fprintln(view, input)
	}
	fmt.Fprint(view, charactersRemaining(input))
	if u.editing {
		view.SetCursor(len([]rune(input)), 0)
	}
}

func (u *UI) renderFilters(view *gocui.View) {
	view.Clear()
	fmt.Fprint(view, formatFilterBar(u.manager.Filter(), u.manager.Counts()))
}

func (u *UI) renderTasks(view *gocui.View, focused bool) {
	view.Clear()
	tasks := u.manager.View()
	if len(tasks) == 0 {
		for _, line := range emptyStateLines(u.manager.Filter(), u.manager.Counts().All) {
			fmt.Fprintln(view, line)
		}
		return
	}
	for i, task := range tasks {
		fmt.Fprintln(view, formatTaskLine(task, i == u.selected, focused))
	}
	if focused {
		view.SetCursor(0, min(u.selected, len(tasks)-1))
	}
}

func (u *UI) renderLedger(view *gocui.View) {
	view.Clear()
	lines := ledgerLines(u.viewer.Groups(), u.viewer.FormatAmount, u.viewer.Currency(), u.ledgerWidth)
	if len(lines) == 0 {
		fmt.Fprint(view, "No transactions found")
		return
	}
	u.ledgerOffset = min(u.ledgerOffset, max(len(lines)-1, 0))
	fmt.Fprint(view, strings.Join(lines, "\n"))
	view.SetOrigin(0, u.ledgerOffset)
}

func (u *UI) renderTabs(view *gocui.View) {
	view.Clear()
	fmt.Fprint(view, formatTabBar(u.viewer.Tab()))
}

func (u *UI) renderSearch(view *gocui.View) {
	view.Clear()
	fmt.Fprint(view, u.searchValue)
	view.SetCursor(len([]rune(u.searchValue)), 0)
}

func (u *UI) showSearch(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()
	width := max(30, maxX/2)
	x0 := (maxX - width) / 2
	y0 := (maxY - 3) / 2

	view, err := gui.SetView(viewSearch, x0, y0, x0+width, y0+2, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		view.Title = "Search transactions"
	}
	view.Editable = true
	view.KeybindOnEdit = true
	view.Editor = u.searchEditor
	u.renderSearch(view)
	_, _ = gui.SetViewOnTop(viewSearch)
	_, _ = gui.SetCurrentView(viewSearch)
	return nil
}

func (u *UI) showHelp(gui *gocui.Gui) error {
	maxX, maxY := gui.Size()
	width := max(60, maxX/2)
	height := min(20, maxY-2)
	x0 := (maxX - width) / 2
	y0 := (maxY - height) / 2

	view, err := gui.SetView(viewHelp, x0, y0, x0+width, y0+height, 0)
	if err != nil && !goerrors.Is(err, gocui.ErrUnknownView) {
		return err
	}
	if goerrors.Is(err, gocui.ErrUnknownView) {
		view.Title = "Help"
		view.Wrap = true
	}
	view.Clear()
	fmt.Fprint(view, helpText())
	_, _ = gui.SetViewOnTop(viewHelp)
	_, _ = gui.SetCurrentView(viewHelp)
	return nil
}

func (u *UI) setInput(value string) {
	u.manager.SetInput(value)
}

func (u *UI) startInput(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() || u.screen != screenTasks {
		return nil
	}
	u.editing = true
	return nil
}

func (u *UI) submitInput(_ *gocui.Gui, _ *gocui.View) error {
	if !u.editing {
		return nil
	}
	_, ok, err := u.manager.Submit(context.Background())
	if err != nil {
		u.fail("add task", err)
		return nil
	}
	if ok {
		u.status = ""
		u.selected = 0
	}
	return nil
}

func (u *UI) cancelInput(gui *gocui.Gui, _ *gocui.View) error {
	u.editing = false
	u.setCurrent(gui, viewTasks)
	return nil
}

func (u *UI) selectedTask() *model.Task {
	tasks := u.manager.View()
	if u.selected >= 0 && u.selected < len(tasks) {
		return &tasks[u.selected]
	}
	return nil
}

func (u *UI) moveDown(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	if u.selected < len(u.manager.View())-1 {
		u.selected++
	}
	return nil
}

func (u *UI) moveUp(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	if u.selected > 0 {
		u.selected--
	}
	return nil
}

func (u *UI) toggleTask(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	selected := u.selectedTask()
	if selected == nil {
		return nil
	}
	if err := u.manager.Toggle(context.Background(), selected.ID); err != nil {
		u.fail("toggle task", err)
		return nil
	}
	u.status = ""
	u.clampSelection()
	return nil
}

func (u *UI) deleteTask(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	selected := u.selectedTask()
	if selected == nil {
		return nil
	}
	if err := u.manager.Remove(context.Background(), selected.ID); err != nil {
		u.fail("delete task", err)
		return nil
	}
	u.status = ""
	u.clampSelection()
	return nil
}

func (u *UI) clearCompleted(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	removed, err := u.manager.ClearCompleted(context.Background())
	if err != nil {
		u.fail("clear completed", err)
		return nil
	}
	u.status = ""
	if removed > 0 {
		u.clampSelection()
	}
	return nil
}

func (u *UI) cycleFilter(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	current := u.manager.Filter()
	next := model.Filters[0]
	for i, filter := range model.Filters {
		if filter == current {
			next = model.Filters[(i+1)%len(model.Filters)]
			break
		}
	}
	return u.setFilter(next)
}

func (u *UI) setFilter(filter model.Filter) error {
	if err := u.manager.SetFilter(filter); err != nil {
		u.fail("set filter", err)
		return nil
	}
	u.selected = 0
	return nil
}

// selectNumber maps the digit keys to filters on the tasks screen and to
// tabs on the ledger screen.
func (u *UI) selectNumber(n int) func(*gocui.Gui, *gocui.View) error {
	return func(_ *gocui.Gui, _ *gocui.View) error {
		if u.inputActive() {
			return nil
		}
		index := n - 1
		if u.screen == screenLedger {
			if index < len(model.Tabs) {
				return u.viewer.SelectTab(model.Tabs[index])
			}
			return nil
		}
		if index < len(model.Filters) {
			return u.setFilter(model.Filters[index])
		}
		return nil
	}
}

func (u *UI) nextTab(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.viewer.NextTab()
	return nil
}

func (u *UI) prevTab(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.viewer.PrevTab()
	return nil
}

func (u *UI) scrollLedgerDown(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	u.ledgerOffset++
	return nil
}

func (u *UI) scrollLedgerUp(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	if u.ledgerOffset > 0 {
		u.ledgerOffset--
	}
	return nil
}

func (u *UI) onTaskClick(gui *gocui.Gui, opts gocui.ViewMouseBindingOpts) error {
	if u.inputActive() {
		return nil
	}
	view, err := gui.View(viewTasks)
	if err != nil {
		return nil
	}

	_, y0, _, _ := view.Dimensions()
	_, oy := view.Origin()
	row := max(opts.Y-y0-1+oy, 0)
	u.selected = max(min(row, len(u.manager.View())-1), 0)
	u.setCurrent(gui, viewTasks)
	return nil
}

func (u *UI) scrollUp(gui *gocui.Gui, view *gocui.View) error {
	if u.screen == screenLedger {
		return u.scrollLedgerUp(gui, view)
	}
	return u.moveUp(gui, view)
}

func (u *UI) scrollDown(gui *gocui.Gui, view *gocui.View) error {
	if u.screen == screenLedger {
		return u.scrollLedgerDown(gui, view)
	}
	return u.moveDown(gui, view)
}

func (u *UI) startSearch(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() || u.screen != screenLedger {
		return nil
	}
	u.searchActive = true
	u.searchValue = u.viewer.Query()
	return nil
}

func (u *UI) submitSearch(gui *gocui.Gui, _ *gocui.View) error {
	u.viewer.SetQuery(u.searchValue)
	u.ledgerOffset = 0
	return u.cancelSearch(gui, nil)
}

func (u *UI) cancelSearch(gui *gocui.Gui, _ *gocui.View) error {
	u.searchActive = false
	if gui != nil {
		_ = gui.DeleteView(viewSearch)
	}
	u.setCurrent(gui, u.focusView())
	return nil
}

func (u *UI) showTasks(gui *gocui.Gui, _ *gocui.View) error {
	return u.setScreen(gui, screenTasks)
}

func (u *UI) showLedger(gui *gocui.Gui, _ *gocui.View) error {
	return u.setScreen(gui, screenLedger)
}

func (u *UI) switchScreen(gui *gocui.Gui, _ *gocui.View) error {
	if u.screen == screenTasks {
		return u.setScreen(gui, screenLedger)
	}
	return u.setScreen(gui, screenTasks)
}

func (u *UI) setScreen(gui *gocui.Gui, screen string) error {
	if u.inputActive() {
		return nil
	}
	u.screen = screen
	u.status = ""
	u.setCurrent(gui, u.focusView())
	return nil
}

func (u *UI) reload(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() {
		return nil
	}
	if err := u.viewer.Load(context.Background()); err != nil {
		u.fail("reload transactions", err)
		return nil
	}
	u.status = ""
	return nil
}

func (u *UI) toggleHelp(_ *gocui.Gui, _ *gocui.View) error {
	if u.inputActive() && !u.helpActive {
		return nil
	}
	u.helpActive = !u.helpActive
	return nil
}

func (u *UI) closeHelp(gui *gocui.Gui, _ *gocui.View) error {
	u.helpActive = false
	if gui != nil {
		_ = gui.DeleteView(viewHelp)
	}
	u.setCurrent(gui, u.focusView())
	return nil
}

func (u *UI) setCurrent(gui *gocui.Gui, name string) {
	if gui == nil {
		return
	}
	_, _ = gui.SetCurrentView(name)
}

func (u *UI) clampSelection() {
	count := len(u.manager.View())
	if u.selected >= count {
		u.selected = max(count-1, 0)
	}
}

func (u *UI) fail(action string, err error) {
	u.logger.Error(action, zap.Error(err))
	u.status = fmt.Sprintf("%s: %v", action, err)
}

func (u *UI) inputActive() bool {
	return u.editing || u.searchActive || u.helpActive
}

func (u *UI) quit(_ *gocui.Gui, _ *gocui.View) error {
	if u.editing || u.searchActive {
		return nil
	}
	return gocui.ErrQuit
}

func helpText() string {
	return strings.Join([]string{
		"Screens:",
		"  F1/T tasks | F2/L ledger | tab switch screen",
		"",
		"Tasks:",
		"  a/i add task | enter save | esc stop typing",
		"  j/k or arrows move selection",
		"  x/space toggle done | d delete | C clear completed",
		"  1 all | 2 active | 3 completed | f cycle filter",
		"",
		"Ledger:",
		"  h/l or arrows switch tab | 1-5 select tab",
		"  j/k scroll | / search | r reload transactions",
		"",
		"Other:",
		"  ? help | esc/q close help | q/ctrl+c quit",
	}, "\n")
}

func applyViewStyle(view *gocui.View, focused bool, highlight bool) {
	view.Frame = true
	view.Highlight = focused && highlight
	view.HighlightInactive = false
	view.SelBgColor = gocui.ColorBlue
	view.SelFgColor = gocui.ColorBlack
	view.InactiveViewSelBgColor = gocui.ColorDefault
	if focused {
		view.FrameColor = gocui.ColorCyan
		view.TitleColor = gocui.ColorCyan
	} else {
		view.FrameColor = gocui.ColorDefault
	}
}
