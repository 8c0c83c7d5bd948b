package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"triangles/internal/triangle"
)

// showCmd renders the cumulative triangle in the terminal
var showCmd = &cobra.Command{
	Use:   "show <input>",
	Short: "Render the cumulative triangle in the terminal",
	Long: `Reads and accumulates the input file, then renders every product's
cumulative triangle as a table: one row per origin year, one column per
development year. No output file is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
)

func runShow(cmd *cobra.Command, args []string) error {
	reader, err := triangle.NewReader(args[0])
	if err != nil {
		return err
	}
	ds, err := reader.Read()
	if err != nil {
		return err
	}
	acc, err := triangle.NewAccumulator(ds)
	if err != nil {
		return err
	}
	data := acc.Accumulate()

	for _, product := range data.Products {
		fmt.Println(titleStyle.Render(product))
		fmt.Print(renderTriangle(data, product))
		fmt.Println()
	}
	return nil
}

// renderTriangle lays out one product's triangle with origin years down the
// left and development years across the top.
func renderTriangle(data *triangle.AccumulatedData, product string) string {
	rows := data.Triangle(product)
	n := data.NDevelopmentYears

	cells := make([][]string, len(rows))
	width := 4 // at least as wide as a year
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			s := triangle.FormatValue(v, cfg.Precision)
			cells[i][j] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%6s", ""))
	for d := 0; d < n; d++ {
		sb.WriteString(headerStyle.Render(fmt.Sprintf("  %*d", width, data.MinOriginYear+d)))
	}
	sb.WriteByte('\n')

	for i, row := range cells {
		sb.WriteString(headerStyle.Render(fmt.Sprintf("%6d", data.MinOriginYear+i)))
		// leading blanks: origin year i only develops from year i onward
		sb.WriteString(strings.Repeat(fmt.Sprintf("  %*s", width, ""), i))
		for _, c := range row {
			sb.WriteString(fmt.Sprintf("  %*s", width, c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
