package ui

import (
	"fmt"
	"strings"

	"github.com/fenilsonani/macsweep/internal/fsutil"
	"github.com/fenilsonani/macsweep/internal/ui/styles"
	"github.com/fenilsonani/macsweep/pkg/utils"
)

func (m Model) View() string {
	switch m.view {
	case viewMenu:
		return m.viewMenu()
	case viewScanning:
		return m.viewScanning()
	case viewDashboard:
		return m.viewDashboard()
	case viewCategory:
		return m.viewCategory()
	case viewConfirm:
		return m.viewConfirm()
	case viewCleaning:
		return m.viewCleaning()
	case viewSummary:
		return m.viewSummary()
	}
	return ""
}

func (m Model) diskLine() string {
	if m.disk == nil {
		return ""
	}
	return styles.DimStyle.Render(fmt.Sprintf("Disk: %s used of %s (%.1f%%), %s available",
		utils.FormatBytes(m.disk.Used),
		utils.FormatBytes(m.disk.Total),
		m.disk.UsagePercent()*100,
		utils.FormatBytes(m.disk.Available))) + "\n\n"
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("macsweep"))
	b.WriteString("\n")
	b.WriteString(m.diskLine())

	for i, item := range menuItems {
		cursor := "  "
		label := item.label
		if i == m.cursor {
			cursor = styles.SelectedStyle.Render("> ")
			label = styles.SelectedStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf("%s%s  %s\n", cursor, label,
			styles.DimStyle.Render(item.description)))
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("up/down: move  enter: select  q: quit"))
	return b.String()
}

func (m Model) viewScanning() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Scanning"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s\n\n", m.spinner.View(), m.engine.ProgressLabel))
	b.WriteString(styles.ProgressBar(m.engine.ProgressDone, m.engine.ProgressTotal, 40))
	b.WriteString(fmt.Sprintf("  %d/%d categories\n", m.engine.ProgressDone, m.engine.ProgressTotal))

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("ctrl+c: quit"))
	return b.String()
}

func (m Model) viewDashboard() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Scan Results"))
	b.WriteString("\n")
	b.WriteString(m.diskLine())

	var total int64
	for i, cat := range m.engine.Categories {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.SelectedStyle.Render("> ")
		}

		box := styles.UncheckedBox()
		switch {
		case cat.ReportOnly:
			box = styles.DimStyle.Render("(i)")
		case cat.Selected:
			box = styles.CheckedBox()
		}

		size := styles.FileSizeStyle.Render(utils.FormatBytes(cat.TotalBytes))
		line := fmt.Sprintf("%s%s %-28s %8d items  %s", cursor, box, cat.Label, len(cat.Items), size)
		if !cat.Scanned {
			line = fmt.Sprintf("%s%s %-28s %s", cursor, box, cat.Label, styles.DimStyle.Render("not scanned"))
		}
		b.WriteString(line + "\n")

		if cat.Selected && !cat.ReportOnly {
			total += cat.SelectedBytes()
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.BoldStyle.Render("Selected for cleanup: " + utils.FormatBytes(total)))
	if m.secure {
		b.WriteString("  " + styles.WarningStyle.Render("[secure delete]"))
	}
	b.WriteString("\n")

	for _, cat := range m.engine.Categories {
		for _, msg := range cat.Errors {
			b.WriteString(styles.WarningStyle.Render("Warning: ") + msg + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("space: toggle  enter: details  c: clean  s: secure  r: rescan  esc: menu"))
	return b.String()
}

func (m Model) viewCategory() string {
	cat := m.engine.Categories[m.categoryIdx]

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(cat.Label))
	b.WriteString("\n")
	if cat.ReportOnly {
		b.WriteString(styles.DimStyle.Render("Report only: these files are listed, never deleted.") + "\n\n")
	}

	visible := m.visibleItemCount()
	end := m.scrollOffset + visible
	if end > len(cat.Items) {
		end = len(cat.Items)
	}

	for i := m.scrollOffset; i < end; i++ {
		item := cat.Items[i]

		cursor := "  "
		if i == m.itemCursor {
			cursor = styles.SelectedStyle.Render("> ")
		}

		box := styles.UncheckedBox()
		if cat.ReportOnly {
			box = "   "
		} else if item.Selected {
			box = styles.CheckedBox()
		}

		path := fsutil.DisplayPath(item.Entry.Path)
		if len(path) > 60 {
			path = "..." + path[len(path)-57:]
		}
		b.WriteString(fmt.Sprintf("%s%s %-60s %s\n", cursor, box,
			styles.FilePathStyle.Render(path),
			styles.FileSizeStyle.Render(utils.FormatBytes(item.Entry.SizeBytes))))
	}

	if len(cat.Items) > visible {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("\n%d-%d of %d", m.scrollOffset+1, end, len(cat.Items))))
	}

	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Selected: %d items, %s\n", cat.SelectedCount(),
		utils.FormatBytes(cat.SelectedBytes())))
	b.WriteString(styles.HelpStyle.Render("space: toggle  a: toggle all  esc: back"))
	return b.String()
}

func (m Model) viewConfirm() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Confirm Cleanup"))
	b.WriteString("\n")

	for _, line := range m.batch.Categories {
		b.WriteString("  " + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.BoldStyle.Render(fmt.Sprintf("Delete %d items and free %s?",
		m.batch.Count, utils.FormatBytes(m.batch.TotalBytes))))
	b.WriteString("\n")
	if m.secure {
		b.WriteString(styles.WarningStyle.Render("Secure delete: files are overwritten before removal.") + "\n")
	}
	b.WriteString(styles.ErrorStyle.Render("Deleted files cannot be recovered."))

	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("y: delete  n: cancel"))
	return b.String()
}

func (m Model) viewCleaning() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Cleaning"))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s\n\n", m.spinner.View(), m.engine.ProgressLabel))
	b.WriteString("Freed so far: " + styles.FileSizeStyle.Render(utils.FormatBytes(m.engine.CleanedBytes)))

	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("ctrl+c: quit"))
	return b.String()
}

func (m Model) viewSummary() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Cleanup Complete"))
	b.WriteString("\n")
	b.WriteString(m.diskLine())

	b.WriteString(styles.SuccessStyle.Render(fmt.Sprintf("Freed %s across %d items",
		utils.FormatBytes(m.engine.CleanedBytes), len(m.engine.Report))))
	b.WriteString("\n")

	if len(m.engine.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range m.engine.Warnings {
			b.WriteString(styles.WarningStyle.Render("Warning: ") + w + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("r: rescan  enter: menu  q: quit"))
	return b.String()
}
