package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// MessageProvider resolves a translation key to its message format
type MessageProvider interface {
	GetMessage(key string) string
}

// TranslatableError is an error whose text is looked up by key when it is
// rendered, so the same value can be shown in any language of a bundle.
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Format(provider MessageProvider) string
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
}

type bundleProvider struct {
	bundle *Bundle
	lang   language.Tag
}

// NewMessageProvider returns a provider reading the messages of lang from
// bundle. Keys missing from bundle fall back to the embedded English messages
// and finally to the key itself.
func NewMessageProvider(bundle *Bundle, lang language.Tag) MessageProvider {
	return bundleProvider{bundle: bundle, lang: lang}
}

func (p bundleProvider) GetMessage(key string) string {
	if p.bundle != nil {
		if msg, ok := p.bundle.Lookup(p.lang, key); ok {
			return msg
		}
	}
	if msg, ok := Default().Lookup(language.English, key); ok {
		return msg
	}

	return key
}

// TrError is a translatable error. NewError creates a sentinel; WithArgs and
// Wrap derive copies which errors.Is still matches against that sentinel.
//
//	var ErrFlagNotFound = i18n.NewError("ezopt.error.flag_not_found")
//	err := ErrFlagNotFound.WithArgs("--help").Wrap(cause)
type TrError struct {
	origin *TrError
	key    string
	args   []interface{}
	cause  error
}

func NewError(key string) *TrError {
	e := &TrError{key: key}
	e.origin = e

	return e
}

// Error renders the error in English
func (e *TrError) Error() string {
	return e.Format(NewMessageProvider(Default(), language.English))
}

// Localize renders the error with the messages of lang taken from bundle
func (e *TrError) Localize(bundle *Bundle, lang language.Tag) string {
	return e.Format(NewMessageProvider(bundle, lang))
}

// Format renders the error through provider. A translatable cause is
// rendered through the same provider.
func (e *TrError) Format(provider MessageProvider) string {
	msg := provider.GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	switch cause := e.cause.(type) {
	case nil:
		return msg
	case TranslatableError:
		return msg + ": " + cause.Format(provider)
	default:
		return msg + ": " + cause.Error()
	}
}

func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	derived := *e
	derived.args = args

	return &derived
}

func (e *TrError) Wrap(err error) TranslatableError {
	derived := *e
	derived.cause = err

	return &derived
}

func (e *TrError) Is(target error) bool {
	t, ok := target.(*TrError)
	return ok && e.origin != nil && t.origin == e.origin
}

func (e *TrError) Key() string {
	return e.key
}

func (e *TrError) Args() []interface{} {
	return e.args
}

func (e *TrError) Unwrap() error {
	return e.cause
}
