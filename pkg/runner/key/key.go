// Package key provides CLI helpers to display the presentation controls.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

type binding struct {
	Keys   string
	Action string
}

var bindings = []binding{
	{"↓ / j / space / pgdn", "next step"},
	{"↑ / k / pgup", "previous step"},
	{"→ / l", "next gallery card"},
	{"← / h", "previous gallery card"},
	{"1-9", "jump to section"},
	{"g / home", "first step"},
	{"G / end", "last step"},
	{"wheel / drag", "scroll navigation"},
	{"q / esc", "quit"},
}

// Key prints the control legend for the presentation view.
type Key struct{}

// Do renders the key binding table to stdout.
func (k *Key) Do(ctx context.Context) error {
	bold := color.New(color.Bold)

	_, _ = fmt.Fprintln(color.Output, "")

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Keys"), bold.Sprint("Action"))
	for _, b := range bindings {
		tbl.AddRow(b.Keys, b.Action)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
	return nil
}
