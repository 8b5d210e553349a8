package board

// Notifier receives transient user-facing notifications from the
// synchronization layer. Fire-and-forget: delivery never affects board
// state and implementations must not block.
type Notifier interface {
	Success(title, body string)
	Error(title, body string)
}

// NoopNotifier drops every notification. Useful for tests and for
// non-interactive commands.
type NoopNotifier struct{}

func (NoopNotifier) Success(title, body string) {}
func (NoopNotifier) Error(title, body string)   {}
