package ui

import (
	"fmt"
	"path/filepath"

	"github.com/datatug/fexplorer/pkg/fsutils"
	"github.com/datatug/fexplorer/pkg/interaction"
	"github.com/datatug/fexplorer/pkg/navigation"
	"github.com/datatug/fexplorer/pkg/platform"
	"github.com/rivo/tview"
)

type menuItem struct {
	label    string
	shortcut rune
	action   func()
}

func (b *Browser) newRenameForm() {
	b.renameForm = tview.NewForm().
		AddInputField("Name", "", 0, nil, b.session.SetRenameText).
		AddButton("Rename", b.confirmRename).
		AddButton("Cancel", b.cancelModal)
	b.renameName = b.renameForm.GetFormItem(0).(*tview.InputField)
	b.renameForm.SetCancelFunc(b.cancelModal)
	b.renameForm.SetBorder(true)
}

func (b *Browser) confirmRename() {
	if _, err := b.session.ConfirmRename(); err != nil {
		b.sync()
		return
	}
	b.Refresh()
}

func (b *Browser) cancelModal() {
	b.session.CloseModal()
	b.sync()
}

func (b *Browser) menuItems(target interaction.MenuTarget) []menuItem {
	switch {
	case target.Entry != nil:
		entry := *target.Entry
		return []menuItem{
			{"Open", 'o', func() {
				b.session.Interaction().CloseContextMenu()
				if err := b.session.Open(entry); err == nil && entry.IsDir() {
					b.Refresh()
					return
				}
				b.sync()
			}},
			{"Rename", 'r', func() {
				b.session.OpenRename(entry)
				b.sync()
			}},
			{"Delete", 'd', func() {
				b.mutated(b.session.DeleteEntry(entry))
			}},
		}
	case target.Volume != "":
		id := target.Volume
		return []menuItem{
			{"Open", 'o', func() {
				b.session.Interaction().CloseContextMenu()
				if err := b.session.SelectVolume(id); err != nil {
					b.sync()
					return
				}
				b.Refresh()
			}},
			{"Disk information", 'i', func() {
				b.session.OpenVolumeInfo(id)
				b.volumeInfo.SetText(b.volumeText(id))
				b.sync()
			}},
		}
	case b.session.Mode() == navigation.DiskSelection:
		return []menuItem{
			{"Refresh disks", 'r', func() {
				b.session.Interaction().CloseContextMenu()
				b.session.RefreshVolumes()
				b.Refresh()
			}},
		}
	default:
		return []menuItem{
			{"New folder", 'n', func() {
				_, err := b.session.CreateDirectory()
				b.mutated(err)
			}},
			{"New file", 'f', func() {
				_, err := b.session.CreateFile()
				b.mutated(err)
			}},
		}
	}
}

func (b *Browser) fillMenu(menu interaction.ContextMenu) {
	items := b.menuItems(menu.Target)
	b.menu.Clear()
	width := 0
	for _, item := range items {
		b.menu.AddItem(item.label, "", item.shortcut, item.action)
		width = max(width, tview.TaggedStringWidth(item.label))
	}
	// border plus shortcut column
	b.menu.SetRect(menu.Position.X, menu.Position.Y, width+6, len(items)+2)
}

func (b *Browser) volumeText(id platform.VolumeID) string {
	usage, err := b.session.VolumeInfo(id)
	if err != nil {
		return fmt.Sprintf("%s\n\n%v", platform.VolumeRoot(id), err)
	}
	return fmt.Sprintf("%s %s\n\nTotal: %s\nUsed: %s (%.0f%%)\nFree: %s",
		usage.Root, usage.Fstype,
		fsutils.FormatSize(usage.Total),
		fsutils.FormatSize(usage.Used), usage.UsedPercent,
		fsutils.FormatSize(usage.Free),
	)
}

// sync makes the overlays match the interaction state.
func (b *Browser) sync() {
	state := b.session.Interaction()
	var focus tview.Primitive = b.table

	menu := state.ContextMenu()
	if menu.Open {
		b.fillMenu(menu)
		b.pages.ShowPage(pageMenu)
		focus = b.menu
	} else {
		b.pages.HidePage(pageMenu)
	}

	modal := state.Modal()
	b.pages.HidePage(pageRename)
	b.pages.HidePage(pageVolume)
	switch modal.Kind {
	case interaction.ModalRename:
		b.renameForm.SetTitle(" Rename " + tview.Escape(filepath.Base(modal.EntryPath)) + " ")
		if text := state.PendingRenameText(); b.renameName.GetText() != text {
			b.renameName.SetText(text)
		}
		b.pages.ShowPage(pageRename)
		focus = b.renameForm
	case interaction.ModalVolumeInfo:
		b.pages.ShowPage(pageVolume)
		focus = b.volumeInfo
	}

	b.showStatus()
	b.app.SetFocus(focus)
}
