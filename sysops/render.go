package sysops

import (
	"fmt"
	"iter"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
)

// helpRows 帮助信息
var helpRows = [][]string{
	{"ls / list", "List files"},
	{"cd <dir>", "Enter directory"},
	{"back", "Go to previous directory"},
	{"top [n]", "Show largest file(s)"},
	{"find <name>", "Search by name"},
	{"size_gt <bytes>", "Filter by size (greater than)"},
	{"size_lt <bytes>", "Filter by size (less than)"},
	{"sort <crit>", "Sort by 'name' or 'size'"},
	{"analyse [path]", "Show statistics (Counts, Avg, Max)"},
	{"history", "Show command history"},
	{"exit", "Quit"},
}

// header 输出标题行
func (b *Browser) header(format string, args ...any) {
	b.headerColor.Fprintf(b.out, format+"\n", args...)
}

// fail 输出错误提示
func (b *Browser) fail(format string, args ...any) {
	b.errColor.Fprintf(b.out, format+"\n", args...)
}

// newTable 统一表格样式
func (b *Browser) newTable(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(b.out)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// renderItems 以表格输出条目 返回条目数
func (b *Browser) renderItems(items iter.Seq[Item]) int {
	table := b.newTable("Name", "Size", "Modified", "Type")
	count := 0
	for item := range items {
		kind := "FILE"
		if item.IsDir() {
			kind = "DIR"
		}
		table.Append([]string{
			item.Name(),
			strconv.FormatInt(item.Size(), 10),
			item.ModTime().Format(time.DateTime),
			kind,
		})
		count++
	}
	if count > 0 {
		table.Render()
	}
	return count
}

// renderHelp 输出帮助表格
func (b *Browser) renderHelp() {
	fmt.Fprintln(b.out, "Available Commands:")
	table := b.newTable("Command", "Description")
	table.AppendBulk(helpRows)
	table.Render()
}

// filter 按条件过滤视图
func filter(items iter.Seq[Item], pred func(Item) bool) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for item := range items {
			if pred(item) && !yield(item) {
				return
			}
		}
	}
}
