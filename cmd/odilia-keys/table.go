package main

import (
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/odilia-app/odilia-common/internal/config"
	"github.com/odilia-app/odilia-common/internal/input/keymap"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Title.Align = text.AlignCenter
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault
	return tw
}

func tableRow(cells ...any) table.Row {
	return table.Row(cells)
}

func bindingsTable(km *keymap.Keymap) table.Writer {
	tw := newTable()
	tw.SetTitle(km.Name())
	tw.AppendHeader(table.Row{"Mode", "Keys", "Action", "Category", "Description"})
	for _, e := range km.Entries() {
		tw.AppendRow(table.Row{e.Binding.Mode.String(), e.Binding.String(), e.Event.String(), e.Category, e.Description})
	}
	tw.AppendFooter(table.Row{"", "", "", "Total", km.Len()})
	return tw
}

func issuesTable(report *config.Report) table.Writer {
	tw := newTable()
	tw.SetTitle("Invalid bindings")
	tw.AppendHeader(table.Row{"#", "Keys", "Field", "Kind", "Error"})
	for _, issue := range report.Issues {
		kind := "-"
		if k := issue.Kind(); k != 0 {
			kind = k.String()
		}
		tw.AppendRow(table.Row{issue.Index, issue.Keys, yellow(issue.Field), red(kind), issue.Err.Error()})
	}
	return tw
}
