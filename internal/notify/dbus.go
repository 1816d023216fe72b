//go:build linux

package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notifyDest   = "org.freedesktop.Notifications"
	notifyPath   = "/org/freedesktop/Notifications"
	notifyMethod = "org.freedesktop.Notifications.Notify"

	appName      = "Vinyl"
	desktopEntry = "vinyl"
)

type dbusNotifier struct {
	obj dbus.BusObject
}

// New connects to the session bus notification service. When the bus is
// unreachable it returns a silent Notifier instead of an error: running
// without a desktop is a supported setup, not a failure.
func New() (Notifier, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return noopNotifier{}, nil
	}
	return &dbusNotifier{obj: conn.Object(notifyDest, notifyPath)}, nil
}

func (d *dbusNotifier) Notify(n Notification) (uint32, error) {
	hints := map[string]dbus.Variant{
		"desktop-entry": dbus.MakeVariant(desktopEntry),
	}

	call := d.obj.Call(notifyMethod, 0,
		appName,
		n.ReplacesID,
		"", // app_icon
		n.Title,
		n.Body,
		[]string{}, // actions
		hints,
		n.Timeout,
	)
	if call.Err != nil {
		return 0, fmt.Errorf("dbus notify: %w", call.Err)
	}

	var id uint32
	if err := call.Store(&id); err != nil {
		return 0, fmt.Errorf("dbus notify reply: %w", err)
	}
	return id, nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(Notification) (uint32, error) { return 0, nil }
