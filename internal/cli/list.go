package cli

import (
	"fmt"
	"strings"

	"terminal-notes/internal/model"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all notes and todos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, _, err := resolve(opts)
			if err != nil {
				return err
			}
			doc, err := st.Load()
			if err != nil {
				return err
			}
			printDocument(doc)
			return nil
		},
	}
}

var (
	listBold    = color.New(color.Bold).SprintFunc()
	listDone    = color.New(color.FgGreen).SprintFunc()
	listOverdue = color.New(color.FgRed).SprintFunc()
)

func printDocument(doc *model.Document) {
	fmt.Fprintln(color.Output, listBold("Notes"))
	if len(doc.Notes) == 0 {
		fmt.Fprintln(color.Output, "  (none)")
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(listBold("Title"), listBold("Created"), listBold("Tags"))
		for _, n := range doc.Notes {
			tbl.AddRow(n.Title, n.CreatedAt, strings.Join(n.Tags, ", "))
		}
		fmt.Fprintln(color.Output, tbl)
	}

	fmt.Fprintln(color.Output)
	fmt.Fprintln(color.Output, listBold("Todos"))
	if len(doc.Todos) == 0 {
		fmt.Fprintln(color.Output, "  (none)")
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(listBold("Done"), listBold("Severity"), listBold("Due"), listBold("Title"))
	for _, t := range doc.Todos {
		tbl.AddRow(todoBox(t), string(t.Severity), todoDue(t), todoTitle(t))
	}
	fmt.Fprintln(color.Output, tbl)
}

func todoBox(t model.Todo) string {
	if t.Completed {
		return listDone("[✓]")
	}
	return "[ ]"
}

func todoDue(t model.Todo) string {
	if t.DueDate == nil {
		return "-"
	}
	if t.IsOverdue() {
		return listOverdue(*t.DueDate)
	}
	return *t.DueDate
}

func todoTitle(t model.Todo) string {
	switch {
	case t.Completed:
		return listDone(t.Title)
	case t.IsOverdue():
		return listOverdue(t.Title)
	default:
		return t.Title
	}
}
