package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Joseda-hg/lazypocket/internal/ledger"
	"github.com/Joseda-hg/lazypocket/internal/model"
	"github.com/Joseda-hg/lazypocket/internal/todo"
	"github.com/dustin/go-humanize/english"
)

func formatTaskLine(task model.Task, selected, focused bool) string {
	prefix := " "
	if selected {
		if focused {
			prefix = ">"
		} else {
			prefix = "*"
		}
	}
	check := "[ ]"
	if task.Completed {
		check = "[x]"
	}
	return fmt.Sprintf("%s %s %s  (%s)", prefix, check, task.Text, task.CreatedAt)
}

func filterLabel(filter model.Filter, counts todo.Counts) string {
	switch filter {
	case model.FilterActive:
		return fmt.Sprintf("Active (%d)", counts.Active)
	case model.FilterCompleted:
		return fmt.Sprintf("Completed (%d)", counts.Completed)
	default:
		return fmt.Sprintf("All (%d)", counts.All)
	}
}

func formatFilterBar(current model.Filter, counts todo.Counts) string {
	parts := make([]string, 0, len(model.Filters))
	for i, filter := range model.Filters {
		label := fmt.Sprintf("%d %s", i+1, filterLabel(filter, counts))
		if filter == current {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " | ")
}

func formatCounters(counts todo.Counts) string {
	return fmt.Sprintf("Active: %d | Completed: %d", counts.Active, counts.Completed)
}

func emptyStateLines(filter model.Filter, total int) []string {
	if total == 0 {
		return []string{"No tasks yet", "Add a new task to get started!"}
	}
	return []string{"No tasks found", fmt.Sprintf("No %s tasks to show. Try adjusting your filter.", filter)}
}

func clearCompletedHint(completed int) string {
	if completed <= 0 {
		return ""
	}
	return "C clear " + english.Plural(completed, "completed task", "")
}

func charactersRemaining(input string) string {
	if input == "" {
		return ""
	}
	return fmt.Sprintf("%d characters remaining", todo.MaxTextLength-utf8.RuneCountInString(input))
}

func formatTabBar(current model.Tab) string {
	parts := make([]string, 0, len(model.Tabs))
	for i, tab := range model.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Label())
		if tab == current {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, "  ")
}

func iconGlyph(icon string) string {
	switch icon {
	case "bag":
		return "[shop]"
	case "car":
		return "[fuel]"
	case "utensils":
		return "[food]"
	case "coffee":
		return "[cafe]"
	case "home":
		return "[home]"
	default:
		return "[ -- ]"
	}
}

func ledgerLines(groups []ledger.DateGroup, formatAmount func(model.Transaction) string, currency string, width int) []string {
	lines := make([]string, 0, len(groups)*4)
	for i, group := range groups {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, alignRight(group.Date, ledger.FormatAmount(currency, group.Total), width))
		for _, tx := range group.Transactions {
			lines = append(lines,
				alignRight(fmt.Sprintf("  %s %s", iconGlyph(tx.Icon), tx.Merchant), formatAmount(tx), width),
				fmt.Sprintf("         %s · %s", tx.Category, tx.Report),
			)
		}
	}
	return lines
}

func alignRight(left, right string, width int) string {
	gap := width - utf8.RuneCountInString(left) - utf8.RuneCountInString(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
