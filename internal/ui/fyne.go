package ui

import (
	"errors"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var ErrNoSystemTray = errors.New("ui: driver has no system tray")

// FyneTray puts the icon and menu in the desktop system tray. Tray hosts
// differ on tooltip support, so the tooltip text is also shown as a
// disabled first menu entry.
type FyneTray struct {
	desk   desktop.App
	menu   *fyne.Menu
	status *fyne.MenuItem
}

func NewFyneTray(app fyne.App) (*FyneTray, error) {
	desk, ok := app.(desktop.App)
	if !ok {
		return nil, ErrNoSystemTray
	}
	return &FyneTray{desk: desk}, nil
}

func (t *FyneTray) SetIcon(icon fyne.Resource) {
	t.desk.SetSystemTrayIcon(icon)
}

func (t *FyneTray) SetTooltip(text string) {
	if t.status == nil {
		return
	}
	t.status.Label = text
	t.menu.Refresh()
}

func (t *FyneTray) SetMenu(title string, items []*MenuItem) {
	t.status = fyne.NewMenuItem(title, nil)
	t.status.Disabled = true

	entries := []*fyne.MenuItem{t.status, fyne.NewMenuItemSeparator()}
	for _, it := range items {
		entries = append(entries, fyne.NewMenuItem(it.Label, it.Action))
	}
	t.menu = fyne.NewMenu(title, entries...)
	t.desk.SetSystemTrayMenu(t.menu)
}

// FyneDialog is a small window reused for every message. Closing it hides
// it instead of quitting the app.
type FyneDialog struct {
	mu      sync.Mutex
	window  fyne.Window
	message *widget.Label
	visible bool
}

func NewFyneDialog(app fyne.App) *FyneDialog {
	d := &FyneDialog{
		window:  app.NewWindow(AppName),
		message: widget.NewLabel(""),
	}
	d.message.Alignment = fyne.TextAlignCenter
	ok := widget.NewButton("OK", d.hide)
	ok.Importance = widget.HighImportance

	d.window.SetContent(container.NewPadded(container.NewVBox(d.message, container.NewCenter(ok))))
	d.window.SetCloseIntercept(d.hide)
	d.window.Resize(fyne.NewSize(280, 120))
	d.window.SetFixedSize(true)
	return d
}

func (d *FyneDialog) Show(title, message string) {
	d.mu.Lock()
	d.visible = true
	d.mu.Unlock()

	d.window.SetTitle(title)
	d.message.SetText(message)
	d.window.CenterOnScreen()
	d.window.Show()
	d.window.RequestFocus()
}

func (d *FyneDialog) Visible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}

func (d *FyneDialog) hide() {
	d.mu.Lock()
	d.visible = false
	d.mu.Unlock()
	d.window.Hide()
}
