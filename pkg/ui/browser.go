// Package ui renders a session in the terminal and feeds user input back to it.
package ui

import (
	"github.com/datatug/fexplorer/pkg/interaction"
	"github.com/datatug/fexplorer/pkg/navigation"
	"github.com/datatug/fexplorer/pkg/session"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	pageMain   = "main"
	pageMenu   = "menu"
	pageRename = "rename"
	pageVolume = "volume"
)

type Browser struct {
	app     App
	session *session.Session

	pages  *tview.Pages
	layout *tview.Flex
	header *tview.TextView
	search *tview.InputField
	table  *tview.Table
	status *tview.TextView

	menu       *tview.List
	renameForm *tview.Form
	renameName *tview.InputField
	volumeInfo *tview.Modal

	rows *rows
}

func New(app App, s *session.Session) *Browser {
	b := &Browser{
		app:     app,
		session: s,
	}

	b.header = tview.NewTextView().SetDynamicColors(true)
	b.search = tview.NewInputField().
		SetLabel("Search: ").
		SetFieldWidth(0).
		SetChangedFunc(s.SetSearch)
	b.search.SetDoneFunc(func(tcell.Key) {
		b.app.SetFocus(b.table)
	})

	b.table = tview.NewTable().SetSelectable(true, false)
	b.table.SetSelectedFunc(func(r, _ int) {
		b.activate(r)
	})
	b.table.SetInputCapture(b.tableInputCapture)

	b.status = tview.NewTextView().SetDynamicColors(true)

	b.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.header, 1, 0, false).
		AddItem(b.search, 1, 0, false).
		AddItem(b.table, 0, 1, true).
		AddItem(b.status, 1, 0, false)

	b.menu = tview.NewList().ShowSecondaryText(false)
	b.menu.SetBorder(true)
	b.menu.SetDoneFunc(func() {
		b.session.Interaction().CloseContextMenu()
		b.sync()
	})

	b.newRenameForm()

	b.volumeInfo = tview.NewModal().
		AddButtons([]string{"Close"}).
		SetDoneFunc(func(int, string) {
			b.session.CloseModal()
			b.sync()
		})

	b.pages = tview.NewPages().
		AddPage(pageMain, b.layout, true, true).
		AddPage(pageMenu, b.menu, false, false).
		AddPage(pageRename, centered(b.renameForm, 50, 7), true, false).
		AddPage(pageVolume, b.volumeInfo, true, false)
	b.pages.SetMouseCapture(b.mouseCapture)

	b.Refresh()
	return b
}

// Setup installs the browser as the application root.
func (b *Browser) Setup() {
	b.app.SetRoot(b.pages, true)
	b.app.EnableMouse(b.session.Settings().UI.Mouse)
	b.app.SetFocus(b.table)
}

// Refresh re-reads the current location and redraws every part from session state.
func (b *Browser) Refresh() {
	switch b.session.Mode() {
	case navigation.DiskSelection:
		b.header.SetText(b.title() + "[::b]Select a disk[::-]")
		b.rows = volumeRows(b.session.KnownVolumes())
	default:
		b.header.SetText(b.title() + "[::b]" + tview.Escape(b.session.CurrentPath()) + "[::-]")
		entries, err := b.session.List()
		if err == nil && b.session.Settings().UI.SortEntries {
			sortEntries(entries)
		}
		b.rows = entryRows(entries, err)
	}
	b.table.SetContent(b.rows)
	b.table.Select(0, 0)
	b.table.ScrollToBeginning()
	b.sync()
}

func (b *Browser) title() string {
	if title := b.session.RootTitle(); title != "" {
		return "[gray]" + tview.Escape(title) + ":[-] "
	}
	return ""
}

func (b *Browser) activate(i int) {
	item, ok := b.rows.at(i)
	if !ok {
		return
	}
	switch {
	case item.parent:
		b.session.GoUp()
	case item.entry != nil:
		if err := b.session.Open(*item.entry); err != nil || !item.entry.IsDir() {
			b.sync()
			return
		}
	default:
		if err := b.session.SelectVolume(item.volume); err != nil {
			b.sync()
			return
		}
	}
	b.Refresh()
}

func (b *Browser) selected() (row, bool) {
	i, _ := b.table.GetSelection()
	return b.rows.at(i)
}

func (b *Browser) tableInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyBackspace, tcell.KeyBackspace2, tcell.KeyLeft:
		b.session.GoUp()
		b.Refresh()
		return nil
	case tcell.KeyF2:
		if item, ok := b.selected(); ok && item.entry != nil {
			b.session.OpenRename(*item.entry)
			b.sync()
		}
		return nil
	case tcell.KeyDelete:
		if item, ok := b.selected(); ok && item.entry != nil {
			b.mutated(b.session.DeleteEntry(*item.entry))
		}
		return nil
	case tcell.KeyCtrlR:
		b.session.RefreshVolumes()
		b.Refresh()
		return nil
	case tcell.KeyCtrlF:
		b.app.SetFocus(b.search)
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'm':
			b.openMenuAtSelection()
			return nil
		case 'q':
			b.app.Stop()
			return nil
		}
	}
	return event
}

func (b *Browser) openMenuAtSelection() {
	item, _ := b.selected()
	x, y, _, _ := b.table.GetInnerRect()
	i, _ := b.table.GetSelection()
	offset, _ := b.table.GetOffset()
	b.session.OpenContextMenu(interaction.Point{X: x + 2, Y: y + i - offset + 1}, b.targetOf(item))
	b.sync()
}

func (b *Browser) targetOf(item row) interaction.MenuTarget {
	switch {
	case item.entry != nil:
		return interaction.EntryTarget(*item.entry)
	case item.volume != "":
		return interaction.VolumeTarget(item.volume)
	default:
		return interaction.MainArea()
	}
}

// rowAt maps screen coordinates to a table row index.
func (b *Browser) rowAt(x, y int) (int, bool) {
	if !b.table.InRect(x, y) {
		return 0, false
	}
	_, top, _, _ := b.table.GetInnerRect()
	offset, _ := b.table.GetOffset()
	return y - top + offset, true
}

func (b *Browser) mouseCapture(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	x, y := event.Position()
	state := b.session.Interaction()
	if state.Modal().Kind == interaction.ModalRename && action != tview.MouseMove && !b.renameForm.InRect(x, y) {
		if action == tview.MouseLeftDown {
			b.session.PrimaryClick()
		}
		return tview.MouseConsumed, nil
	}
	switch action {
	case tview.MouseRightClick:
		if state.Modal().Kind != interaction.ModalClosed {
			return action, event
		}
		i, inTable := b.rowAt(x, y)
		if !inTable {
			return action, event
		}
		item, _ := b.rows.at(i)
		if item.entry != nil || item.volume != "" {
			b.table.Select(i, 0)
		}
		b.session.OpenContextMenu(interaction.Point{X: x, Y: y}, b.targetOf(item))
		b.sync()
		return tview.MouseConsumed, nil
	case tview.MouseLeftDown:
		if state.ContextMenu().Open && !b.menu.InRect(x, y) {
			b.session.PrimaryClick()
			b.sync()
			return tview.MouseConsumed, nil
		}
	}
	return action, event
}

func (b *Browser) mutated(err error) {
	if err == nil {
		b.Refresh()
		return
	}
	b.sync()
}

func (b *Browser) showStatus() {
	n, ok := b.session.LastNotification()
	if !ok {
		b.status.SetText("")
		return
	}
	text := tview.Escape(n.Text)
	if n.Level == session.LevelError {
		text = "[red]" + text + "[-]"
	}
	b.status.SetText(text)
}

func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
