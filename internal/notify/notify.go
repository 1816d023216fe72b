// Package notify shows desktop banners for track changes. Each banner
// replaces the previous one so skipping through an album doesn't stack a
// notification per track.
package notify

// Notification is one desktop banner.
type Notification struct {
	Title      string
	Body       string
	ReplacesID uint32 // 0 starts a new banner, >0 replaces that one
	Timeout    int32  // ms, -1 for the server default
}

// Notifier sends desktop notifications. Implementations are best-effort:
// a missing notification service is not an error the caller can act on.
type Notifier interface {
	// Notify shows the banner and returns its server-assigned ID, which
	// can be passed back as ReplacesID. A zero ID means the banner was
	// silently dropped.
	Notify(n Notification) (uint32, error)
}
