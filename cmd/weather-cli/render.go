package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/dashboard"
)

const (
	missingValue  = "-"
	maxSparkWidth = 60
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// styles binds every style to the renderer of one output, so colours are
// dropped when out is not a terminal.
type styles struct {
	r      *lipgloss.Renderer
	title  lipgloss.Style
	dim    lipgloss.Style
	active lipgloss.Style
	cell   lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		r:      r,
		title:  r.NewStyle().Bold(true),
		dim:    r.NewStyle().Foreground(lipgloss.Color("240")),
		active: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		cell:   r.NewStyle().Padding(0, 1),
	}
}

func (st styles) metric(m models.Metric) lipgloss.Style {
	return st.r.NewStyle().Foreground(lipgloss.Color(m.HexColor()))
}

func renderText(out io.Writer, res dashboard.Result) error {
	if err := renderChartSummary(out, res.Chart); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return err
	}
	return renderTable(out, res.Page())
}

// renderChartSummary prints one sparkline per series in the metric's colour,
// followed by its range and mean over the days that have a value.
func renderChartSummary(out io.Writer, chart models.ChartModel) error {
	st := newStyles(out)

	first, last := "", ""
	if n := len(chart.Labels); n > 0 {
		first, last = chart.Labels[0], chart.Labels[n-1]
	}
	lines := []string{
		st.title.Render(fmt.Sprintf("%s: %s .. %s (%d days)", chart.XAxisTitle, first, last, len(chart.Labels))),
	}

	labelW := 0
	for _, s := range chart.Series {
		labelW = max(labelW, lipgloss.Width(s.Label))
	}

	for _, s := range chart.Series {
		color := st.metric(s.Metric)
		label := color.Bold(true).Width(labelW).Render(s.Label)
		spark := color.Render(sparkline(s.Values, min(len(chart.Labels), maxSparkWidth)))

		lo, hi, mean, missing, ok := summarize(s.Values, len(chart.Labels))
		stats := st.dim.Render("no values")
		if ok {
			stats = fmt.Sprintf("min %.1f  max %.1f  mean %.1f", lo, hi, mean)
		}
		if missing > 0 {
			stats += st.dim.Render(fmt.Sprintf("  missing %d", missing))
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s", label, spark, stats))
	}

	_, err := fmt.Fprintln(out, strings.Join(lines, "\n"))
	return err
}

// sparkline scales the values onto block characters, sampling down to width.
// A missing value is a blank.
func sparkline(values []*float64, width int) string {
	if len(values) == 0 || width < 1 {
		return ""
	}

	if len(values) > width {
		step := float64(len(values)) / float64(width)
		sampled := make([]*float64, width)
		for i := range sampled {
			sampled[i] = values[min(int(float64(i)*step), len(values)-1)]
		}
		values = sampled
	}

	lo, hi, _, _, ok := summarize(values, len(values))
	if !ok {
		return strings.Repeat(" ", len(values))
	}
	rng := hi - lo
	if rng == 0 {
		rng = 1
	}

	var sb strings.Builder
	for _, v := range values {
		if v == nil {
			sb.WriteRune(' ')
			continue
		}
		idx := int((*v - lo) / rng * float64(len(sparkBlocks)-1))
		sb.WriteRune(sparkBlocks[max(0, min(idx, len(sparkBlocks)-1))])
	}
	return sb.String()
}

func summarize(values []*float64, days int) (lo, hi, mean float64, missing int, ok bool) {
	var sum float64
	var n int
	for _, v := range values {
		if v == nil {
			continue
		}
		if n == 0 || *v < lo {
			lo = *v
		}
		if n == 0 || *v > hi {
			hi = *v
		}
		sum += *v
		n++
	}
	missing = days - n
	if n == 0 {
		return 0, 0, 0, missing, false
	}
	return lo, hi, sum / float64(n), missing, true
}

func renderTable(out io.Writer, page dashboard.Page) error {
	st := newStyles(out)

	header := []string{"Date"}
	for _, m := range models.Metrics {
		header = append(header, m.Column())
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.dim).
		Headers(header...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow && col == 0:
				return st.cell.Bold(true)
			case row == table.HeaderRow:
				return st.cell.Inherit(st.metric(models.Metrics[col-1])).Bold(true)
			case col > 0:
				return st.cell.Align(lipgloss.Right)
			}
			return st.cell
		})

	for _, r := range page.Rows {
		cells := []string{r.Date}
		for _, m := range models.Metrics {
			cells = append(cells, formatValue(r.Value(m)))
		}
		t.Row(cells...)
	}

	_, err := fmt.Fprintf(out, "%s\n\n%s\n", t.Render(), renderControls(st, page))
	return err
}

// renderControls draws the << < > >> controls; disabled ones are dimmed.
func renderControls(st styles, page dashboard.Page) string {
	control := func(label string, enabled bool) string {
		if enabled {
			return st.active.Render(label)
		}
		return st.dim.Render(label)
	}

	return strings.Join([]string{
		control("<<", page.CanPrevious),
		control("<", page.CanPrevious),
		fmt.Sprintf("Page %d of %d", page.State.PageIndex+1, max(page.PageCount, 1)),
		control(">", page.CanNext),
		control(">>", page.CanNext),
		st.dim.Render(fmt.Sprintf("Show %d", page.State.PageSize)),
	}, " ")
}

func formatValue(v *float64) string {
	if v == nil {
		return missingValue
	}
	return fmt.Sprintf("%.1f", *v)
}

type jsonOutput struct {
	Query models.Query      `json:"query"`
	Chart models.ChartModel `json:"chart"`
	Table dashboard.Page    `json:"table"`
}

func renderJSON(out io.Writer, res dashboard.Result) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonOutput{
		Query: res.Query,
		Chart: res.Chart,
		Table: res.Page(),
	})
}
