package ui

import (
	"slices"
	"strings"

	"github.com/datatug/fexplorer/pkg/files"
	"github.com/datatug/fexplorer/pkg/platform"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	dirIcon    = "📁"
	fileIcon   = "📄"
	volumeIcon = "💽"
	parentName = ".."
)

// row is one line of the table. Exactly one of the fields is meaningful.
type row struct {
	parent bool
	entry  *files.Entry
	volume platform.VolumeID
}

var _ tview.TableContent = (*rows)(nil)

type rows struct {
	tview.TableContentReadOnly
	items []row
	err   error
}

func entryRows(entries []files.Entry, err error) *rows {
	r := &rows{
		items: make([]row, 0, len(entries)+1),
		err:   err,
	}
	r.items = append(r.items, row{parent: true})
	for i := range entries {
		r.items = append(r.items, row{entry: &entries[i]})
	}
	return r
}

func volumeRows(volumes []platform.VolumeID) *rows {
	r := &rows{items: make([]row, 0, len(volumes))}
	for _, v := range volumes {
		r.items = append(r.items, row{volume: v})
	}
	return r
}

// at returns the row under table index i.
func (r *rows) at(i int) (row, bool) {
	if i < 0 || i >= len(r.items) {
		return row{}, false
	}
	return r.items[i], true
}

func (r *rows) GetRowCount() int {
	n := len(r.items)
	if r.err != nil || n == 0 {
		n++
	}
	return n
}

func (r *rows) GetColumnCount() int {
	return 1
}

func (r *rows) GetCell(i, col int) *tview.TableCell {
	if col != 0 {
		return nil
	}
	item, ok := r.at(i)
	if !ok {
		if r.err != nil {
			return tview.NewTableCell(" " + r.err.Error()).
				SetTextColor(tcell.ColorOrangeRed).
				SetSelectable(false)
		}
		return tview.NewTableCell("[::i]No entries[::-]").
			SetTextColor(tcell.ColorGray).
			SetSelectable(false)
	}
	switch {
	case item.parent:
		return tview.NewTableCell(dirIcon + parentName).SetExpansion(1)
	case item.entry != nil:
		icon := fileIcon
		if item.entry.IsDir() {
			icon = dirIcon
		}
		return tview.NewTableCell(icon + tview.Escape(item.entry.Name)).SetExpansion(1)
	default:
		return tview.NewTableCell(volumeIcon + platform.VolumeRoot(item.volume)).SetExpansion(1)
	}
}

// sortEntries puts directories first, then orders by name the way a person reads it.
func sortEntries(entries []files.Entry) {
	c := collate.New(language.Und, collate.IgnoreCase, collate.Numeric)
	slices.SortStableFunc(entries, func(a, b files.Entry) int {
		if a.IsDir() != b.IsDir() {
			if a.IsDir() {
				return -1
			}
			return 1
		}
		if n := c.CompareString(a.Name, b.Name); n != 0 {
			return n
		}
		return strings.Compare(a.Name, b.Name)
	})
}
