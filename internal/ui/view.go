package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zackbart/browse/internal/browser"
	"github.com/zackbart/browse/internal/content"
	"github.com/zackbart/browse/internal/locale"
	"github.com/zackbart/browse/internal/property"
)

// View paints the frame. Rows: top bar, pane headers, divider, body, footer
// divider, status line, key hints; all but the body are browser.ChromeRows.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return lipgloss.NewStyle().Foreground(clrMuted).Render("…")
	}
	v := m.ctrl.Snapshot()

	leftW := max(12, m.width/5)
	rightW := max(1, m.width-leftW-1) // -1 for the vertical separator column
	bodyH := max(1, m.height-browser.ChromeRows)
	paneH := bodyH + 3 // header + divider + body + footer divider

	topBar := m.renderTopBar(v, m.width)
	leftPane := m.renderFileList(v, leftW, bodyH)

	// Render each │ independently so ANSI reset codes don't span newlines.
	sepLine := lipgloss.NewStyle().Foreground(clrBorder).Render("│")
	sepLines := make([]string, paneH)
	for i := range sepLines {
		sepLines[i] = sepLine
	}
	sep := strings.Join(sepLines, "\n")

	rightPane := m.renderContentPane(v, rightW, bodyH)
	bottomBar := m.renderBottomBar(v, m.width)

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftPane, sep, rightPane)
	return topBar + "\n" + body + "\n" + bottomBar
}

// renderTopBar draws the full-width breadcrumb of the listed directory.
func (m Model) renderTopBar(v browser.View, width int) string {
	sepStyle := lipgloss.NewStyle().Foreground(clrPathSep)
	segStyle := lipgloss.NewStyle().Foreground(clrBreadcrumb)
	countStyle := lipgloss.NewStyle().Foreground(clrMuted)

	count := fmt.Sprintf("%d/%d", v.Selected+1, v.Entries.Total())
	rawCount := countStyle.Render(count)
	countW := lipgloss.Width(rawCount)

	budget := max(4, width-2-countW)
	arrow := sepStyle.Render(" › ")

	parts := strings.Split(v.Dir(), string(filepath.Separator))
	var segments []string
	for i, p := range parts {
		if p == "" {
			if i == 0 {
				segments = append(segments, segStyle.Render("/"))
			}
			continue
		}
		if i > 0 {
			segments = append(segments, arrow)
		}
		segments = append(segments, segStyle.Render(p))
	}
	breadcrumb := strings.Join(segments, "")

	// Too wide: keep the last components that fit behind an ellipsis.
	if lipgloss.Width(breadcrumb) > budget {
		ellipsis := sepStyle.Render("…")
		left := budget - lipgloss.Width(ellipsis) - lipgloss.Width(arrow)
		var kept []string
		for i := len(parts) - 1; i >= 0; i-- {
			if parts[i] == "" {
				continue
			}
			seg := segStyle.Render(parts[i])
			if len(kept) > 0 {
				left -= lipgloss.Width(arrow)
			}
			left -= lipgloss.Width(seg)
			if left < 0 {
				break
			}
			kept = append([]string{seg}, kept...)
		}
		if len(kept) == 0 {
			kept = []string{segStyle.Render(trimVisual(filepath.Base(v.Dir()), budget))}
		}
		breadcrumb = ellipsis + arrow + strings.Join(kept, arrow)
	}

	gap := max(1, width-1-lipgloss.Width(breadcrumb)-countW)
	return lipgloss.NewStyle().
		Width(width).
		MaxHeight(1).
		Background(clrDim).
		PaddingLeft(1).
		Render(breadcrumb + strings.Repeat(" ", gap) + rawCount)
}

// renderFileList draws the left pane: title, divider, entries, divider.
func (m Model) renderFileList(v browser.View, w, bodyH int) string {
	mutedStyle := lipgloss.NewStyle().Foreground(clrMuted)
	divider := lipgloss.NewStyle().Foreground(clrDim).Render(strings.Repeat("─", max(1, w)))

	lines := make([]string, 0, bodyH+3)
	title := lipgloss.NewStyle().Foreground(clrTitle).Bold(true).Render(trimVisual(filepath.Base(v.Dir()), w-1))
	lines = append(lines,
		lipgloss.NewStyle().Width(w).Background(clrDim).PaddingLeft(1).Render(title),
		divider,
	)

	total := v.Entries.Total()
	rows := make([]string, 0, bodyH)
	if total == 0 {
		rows = append(rows, mutedStyle.Render(trimVisual("  "+m.tr.T(locale.EmptyDir), w)))
	} else {
		scrollStyle := lipgloss.NewStyle().Foreground(clrScrollbar)
		selected := max(0, v.Selected)

		start, end := visibleWindow(selected, total, bodyH)
		needTop, needBot := start > 0, end < total
		// Showing one indicator can make the other necessary.
		for {
			capacity := bodyH
			if needTop {
				capacity--
			}
			if needBot {
				capacity--
			}
			start, end = visibleWindow(selected, total, max(1, capacity))
			top, bot := start > 0, end < total
			if top == needTop && bot == needBot {
				break
			}
			needTop, needBot = top, bot
		}

		if needTop {
			rows = append(rows, scrollStyle.Render(fmt.Sprintf("  ↑ %d", start)))
		}
		for i := start; i < end; i++ {
			name, _ := v.Entries.At(i)
			isDir := v.Entries.IsDir(i)
			cat := categorise(name, isDir)
			if isDir {
				name += "/"
			}
			raw := fileIcon(cat) + name

			if i == v.Selected {
				row := lipgloss.NewStyle().
					Foreground(clrAccentFg).
					Background(clrAccent).
					Bold(true).
					Render(padRight(raw, w))
				rows = append(rows, row)
				continue
			}
			rows = append(rows, fileColor(cat).Render(trimVisual(raw, w)))
		}
		if needBot {
			rows = append(rows, scrollStyle.Render(fmt.Sprintf("  ↓ %d", total-end)))
		}
	}

	lines = append(lines, lipgloss.NewStyle().Width(w).Height(bodyH).MaxHeight(bodyH).Render(strings.Join(rows, "\n")))
	lines = append(lines, divider)
	return lipgloss.NewStyle().Width(w).Render(strings.Join(lines, "\n"))
}

// renderContentPane draws the right pane: header, divider, content or
// property overlay, divider. The dividers take the accent colour while
// viewing.
func (m Model) renderContentPane(v browser.View, w, bodyH int) string {
	mutedStyle := lipgloss.NewStyle().Foreground(clrMuted)
	borderStyle := lipgloss.NewStyle().Foreground(clrDim)
	if v.Mode == browser.Viewing {
		borderStyle = lipgloss.NewStyle().Foreground(clrAccent)
	}
	divider := borderStyle.Render(strings.Repeat("─", max(1, w)))

	// ── header row ──────────────────────────────────────────────────────────
	var headerLeft, headerRight string
	switch {
	case v.Overlay:
		headerLeft = lipgloss.NewStyle().Foreground(clrTitle).Bold(true).Render(m.tr.T(locale.Properties))
	case v.OnFile:
		name := filepath.Base(v.Path)
		cat := categorise(name, false)
		headerLeft = fileColor(cat).Bold(true).Render(trimVisual(fileIcon(cat)+name, w/2))
	case v.Content.Len() == 0:
		headerLeft = mutedStyle.Render(trimVisual(m.tr.T(locale.NoContent), w/2))
	}
	if n := v.Content.Len(); n > 0 && !v.Overlay {
		last := min(n, v.Offsets.Vertical+bodyH)
		headerRight = mutedStyle.Render(fmt.Sprintf("%s %d-%d/%d", m.tr.T(locale.Line), v.Offsets.Vertical+1, last, n))
	}
	gap := max(1, w-lipgloss.Width(headerLeft)-lipgloss.Width(headerRight)-2) // 2 for padding
	header := lipgloss.NewStyle().
		Width(w).
		MaxHeight(1).
		Background(clrDim).
		PaddingLeft(1).
		Render(headerLeft + strings.Repeat(" ", gap) + headerRight)

	// ── body ─────────────────────────────────────────────────────────────────
	var rows []string
	if v.Overlay {
		for _, line := range property.Format(v.Properties, m.tr) {
			rows = append(rows, trimVisual(line, w))
		}
	} else {
		rows = sliceContent(v.Content, v.Gutter, v.Offsets, w, bodyH)
	}
	if len(rows) > bodyH {
		rows = rows[:bodyH]
	}
	body := lipgloss.NewStyle().Width(w).Height(bodyH).MaxHeight(bodyH).Render(strings.Join(rows, "\n"))

	return header + "\n" + divider + "\n" + body + "\n" + divider
}

// sliceContent renders the visible window of buf, cut to w columns starting
// at the horizontal offset.
func sliceContent(buf content.Buffer, gutter bool, off browser.Offsets, w, h int) []string {
	if off.Vertical >= buf.Len() {
		return nil
	}
	end := min(buf.Len(), off.Vertical+h)
	rows := make([]string, 0, end-off.Vertical)
	for _, line := range buf.Lines[off.Vertical:end] {
		rows = append(rows, ansi.Cut(renderLine(line, gutter), off.Horizontal, off.Horizontal+w))
	}
	return rows
}

func renderLine(line content.Line, gutter bool) string {
	var sb strings.Builder
	for i, span := range line {
		switch {
		case gutter && i == 0:
			sb.WriteString(lipgloss.NewStyle().Foreground(clrGutter).Render(span.Text))
		case span.Style.IsZero():
			sb.WriteString(span.Text)
		default:
			sb.WriteString(spanStyle(span.Style).Render(span.Text))
		}
	}
	return sb.String()
}

// renderBottomBar draws the two-line footer: status + key hints.
func (m Model) renderBottomBar(v browser.View, width int) string {
	mode := m.tr.T(locale.Browsing)
	modeStyle := lipgloss.NewStyle().Foreground(clrAccentFg).Background(clrDir).Bold(true)
	if v.Mode == browser.Viewing {
		mode = m.tr.T(locale.Viewing)
		modeStyle = modeStyle.Background(clrAccent)
	}
	badge := modeStyle.Render(" " + mode + " ")

	status := v.Path
	if v.Offsets.Horizontal > 0 {
		status += fmt.Sprintf("  →%d", v.Offsets.Horizontal)
	}
	status = trimVisual(status, max(1, width-lipgloss.Width(badge)-2))
	statusLine := lipgloss.NewStyle().
		Width(width).
		MaxHeight(1).
		Background(clrDim).
		Render(badge + " " + lipgloss.NewStyle().Foreground(clrStatus).Render(status))

	keysLine := lipgloss.NewStyle().
		Width(width).
		MaxHeight(1).
		Background(clrDim).
		PaddingLeft(1).
		Render(m.help.ShortHelpView(m.keys.ShortHelp()))

	return statusLine + "\n" + keysLine
}

// ── helpers ────────────────────────────────────────────────────────────────────

// visibleWindow returns [start, end) range of entries to show given height.
func visibleWindow(selected, total, height int) (int, int) {
	if total <= height {
		return 0, total
	}
	// Keep selected roughly centred
	start := max(0, selected-height/2)
	end := start + height
	if end > total {
		end = total
		start = max(0, end-height)
	}
	return start, end
}

// trimVisual truncates s to at most n visible terminal columns, appending "…"
// if truncated.
func trimVisual(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	return ansi.Truncate(s, n, "…")
}

// padRight pads or truncates s to exactly n visible terminal columns.
func padRight(s string, n int) string {
	w := lipgloss.Width(s)
	if w >= n {
		return trimVisual(s, n)
	}
	return s + strings.Repeat(" ", n-w)
}
