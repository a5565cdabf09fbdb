package main

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"b2sum/internal/verify"
)

func renderSummaryTable(s verify.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"Outcome", "Count"})
	rows := []struct {
		label string
		count int
	}{
		{"matched", s.Matched},
		{"mismatched", s.Mismatched},
		{"missing", s.Missing},
		{"read errors", s.ReadErrors},
		{"malformed", s.Malformed},
		{"skipped", s.Skipped},
	}
	for _, row := range rows {
		tw.AppendRow(table.Row{row.label, strconv.Itoa(row.count)})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
