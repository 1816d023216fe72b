//go:build !linux

package notify

type noopNotifier struct{}

// New returns a silent Notifier on platforms without a notification bus.
func New() (Notifier, error) {
	return noopNotifier{}, nil
}

func (noopNotifier) Notify(Notification) (uint32, error) { return 0, nil }
