package notify

import "github.com/gen2brain/beeep"

type Notifier interface {
	Notify(title, body string) error
}

type desktopNotifier struct {
	icon string
}

func (n desktopNotifier) Notify(title, body string) error {
	return beeep.Notify(title, body, n.icon)
}

// New returns a notifier that posts to the desktop notification daemon.
// icon may be empty.
func New(icon string) Notifier {
	return desktopNotifier{icon: icon}
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, string) error { return nil }

func Nop() Notifier { return nopNotifier{} }

// Func adapts a plain function to Notifier.
type Func func(title, body string) error

func (f Func) Notify(title, body string) error { return f(title, body) }
