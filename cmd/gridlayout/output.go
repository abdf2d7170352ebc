package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	json "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/benoitkugler/gridlayout/grid"
	"github.com/benoitkugler/gridlayout/utils"
)

// report is the serialized form of a layout.
type report struct {
	Width   float64      `yaml:"width" json:"width"`
	Height  float64      `yaml:"height" json:"height"`
	Columns []float64    `yaml:"columns" json:"columns"`
	Rows    []float64    `yaml:"rows" json:"rows"`
	Items   []itemReport `yaml:"items" json:"items"`
}

type itemReport struct {
	Label       string  `yaml:"label,omitempty" json:"label,omitempty"`
	RowStart    int     `yaml:"row_start" json:"row_start"`
	RowEnd      int     `yaml:"row_end" json:"row_end"`
	ColumnStart int     `yaml:"column_start" json:"column_start"`
	ColumnEnd   int     `yaml:"column_end" json:"column_end"`
	X           float64 `yaml:"x" json:"x"`
	Y           float64 `yaml:"y" json:"y"`
	Width       float64 `yaml:"width" json:"width"`
	Height      float64 `yaml:"height" json:"height"`
	Fits        bool    `yaml:"fits" json:"fits"`
}

func newReport(res *grid.Result, labels []string, precision int) report {
	round := func(v utils.Fl) float64 {
		// going through the decimal representation avoids float32 artifacts
		f, _ := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'f', precision, 32), 64)
		return f
	}
	rounds := func(vs []utils.Fl) []float64 {
		out := make([]float64, len(vs))
		for i, v := range vs {
			out[i] = round(v)
		}
		return out
	}

	out := report{
		Width:   round(res.Width()),
		Height:  round(res.Height()),
		Columns: rounds(res.Columns),
		Rows:    rounds(res.Rows),
		Items:   make([]itemReport, len(res.Cells)),
	}
	for i, cell := range res.Cells {
		item := itemReport{
			RowStart:    cell.RowStart,
			RowEnd:      cell.RowEnd,
			ColumnStart: cell.ColumnStart,
			ColumnEnd:   cell.ColumnEnd,
			X:           round(cell.Area.X),
			Y:           round(cell.Area.Y),
			Width:       round(cell.Area.Width),
			Height:      round(cell.Area.Height),
			Fits:        cell.FitsArea,
		}
		if i < len(labels) {
			item.Label = labels[i]
		}
		out.Items[i] = item
	}
	return out
}

func writeReport(w io.Writer, rep report, format string) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	default:
		_, err := io.WriteString(w, rep.text())
		return err
	}
}

func formatNumber(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func formatNumbers(vs []float64) string {
	chunks := make([]string, len(vs))
	for i, v := range vs {
		chunks[i] = formatNumber(v)
	}
	return strings.Join(chunks, " ")
}

func (rep report) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "grid: %s x %s\n", formatNumber(rep.Width), formatNumber(rep.Height))
	fmt.Fprintf(&b, "columns: %s\n", formatNumbers(rep.Columns))
	fmt.Fprintf(&b, "rows: %s\n", formatNumbers(rep.Rows))

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "ITEM", "ROWS", "COLUMNS", "X", "Y", "WIDTH", "HEIGHT", "FITS")
	for i, item := range rep.Items {
		fits := "yes"
		if !item.Fits {
			fits = "no"
		}
		t.Row(
			strconv.Itoa(i),
			item.Label,
			fmt.Sprintf("%d-%d", item.RowStart, item.RowEnd),
			fmt.Sprintf("%d-%d", item.ColumnStart, item.ColumnEnd),
			formatNumber(item.X),
			formatNumber(item.Y),
			formatNumber(item.Width),
			formatNumber(item.Height),
			fits,
		)
	}
	b.WriteString(t.String())
	b.WriteByte('\n')
	return b.String()
}
