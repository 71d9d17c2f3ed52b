package errs

import (
	"github.com/napalu/ezopt/i18n"
)

// Registration errors
var (
	ErrEmptyFlag           = i18n.NewError(ErrEmptyFlagKey)
	ErrNoFlags             = i18n.NewError(ErrNoFlagsKey)
	ErrFlagAlreadyExists   = i18n.NewError(ErrFlagAlreadyExistsKey)
	ErrInvalidExpectArgs   = i18n.NewError(ErrInvalidExpectArgsKey)
	ErrLanguageUnavailable = i18n.NewError(ErrLanguageUnavailableKey)
	ErrConfiguringParser   = i18n.NewError(ErrConfiguringParserKey)
)

// Parse errors
var (
	ErrFlagNotFound      = i18n.NewError(ErrFlagNotFoundKey)
	ErrFlagExpectsValue  = i18n.NewError(ErrFlagExpectsValueKey)
	ErrSplitCommandLine  = i18n.NewError(ErrSplitCommandLineKey)
	ErrUnterminatedQuote = i18n.NewError(ErrUnterminatedQuoteKey)
	ErrFileOperation     = i18n.NewError(ErrFileOperationKey)
	ErrUnsupportedFormat = i18n.NewError(ErrUnsupportedFormatKey)
	ErrEncodeSnapshot    = i18n.NewError(ErrEncodeSnapshotKey)
	ErrDecodeSnapshot    = i18n.NewError(ErrDecodeSnapshotKey)
	ErrUnsupportedShell  = i18n.NewError(ErrUnsupportedShellKey)
)
