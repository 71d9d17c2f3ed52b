package errs

import (
	"github.com/napalu/ezopt/i18n"
)

// Localized renders a translatable error through a fixed message provider.
// It unwraps to the translatable error, so errors.Is and errors.As see the
// sentinel it was derived from.
type Localized struct {
	err      i18n.TranslatableError
	provider i18n.MessageProvider
}

// WithProvider binds err to provider
func WithProvider(err i18n.TranslatableError, provider i18n.MessageProvider) error {
	return &Localized{err: err, provider: provider}
}

func (e *Localized) Error() string {
	return e.err.Format(e.provider)
}

func (e *Localized) Unwrap() error {
	return e.err
}
