package ui

import (
	"github.com/rivo/tview"
)

// App is the part of *tview.Application the browser drives.
type App interface {
	Run() error
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	EnableMouse(bool)
	Stop()
}

type AppOption func(a *appProxy)

// NewApp wraps app. Options replace individual methods, mostly for tests.
func NewApp(app *tview.Application, o ...AppOption) App {
	a := &appProxy{
		setFocus:    func(tview.Primitive) {},
		setRoot:     func(tview.Primitive, bool) {},
		enableMouse: func(bool) {},
		run:         func() error { return nil },
		stop:        func() {},
	}
	if app != nil {
		a.setFocus = func(p tview.Primitive) {
			_ = app.SetFocus(p)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithSetFocus(setFocus func(p tview.Primitive)) AppOption {
	return func(a *appProxy) {
		a.setFocus = setFocus
	}
}

func WithSetRoot(setRoot func(root tview.Primitive, fullscreen bool)) AppOption {
	return func(a *appProxy) {
		a.setRoot = setRoot
	}
}

func WithEnableMouse(enableMouse func(bool)) AppOption {
	return func(a *appProxy) {
		a.enableMouse = enableMouse
	}
}

func WithRun(run func() error) AppOption {
	return func(a *appProxy) {
		a.run = run
	}
}

func WithStop(stop func()) AppOption {
	return func(a *appProxy) {
		a.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	setFocus    func(p tview.Primitive)
	setRoot     func(root tview.Primitive, fullscreen bool)
	enableMouse func(bool)
	run         func() error
	stop        func()
}

func (a appProxy) EnableMouse(b bool) {
	a.enableMouse(b)
}

func (a appProxy) SetFocus(p tview.Primitive) {
	a.setFocus(p)
}

func (a appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	a.setRoot(root, fullscreen)
}

func (a appProxy) Run() error {
	return a.run()
}

func (a appProxy) Stop() {
	a.stop()
}
