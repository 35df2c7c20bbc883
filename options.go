package wikimark

// Option is a function that configures the engine at construction time.
type Option func(*Engine)

// WithConfirmer sets the confirmation dialog host. Without one, offers
// resolve as declined.
func WithConfirmer(c Confirmer) Option {
	return func(e *Engine) {
		e.confirmer = c
	}
}

// WithNotifier sets the notification sink. Without one, notices are dropped.
func WithNotifier(n NotifyFunc) Option {
	return func(e *Engine) {
		e.notifier = n
	}
}

// WithSettings sets the settings store. Without one, defaults apply.
func WithSettings(s SettingsStore) Option {
	return func(e *Engine) {
		e.settings = s
	}
}
