// Package errs provides the translatable sentinel errors of the ezopt library.
// This file contains constants for all error translation keys.
package errs

// Prefix for all ezopt translation keys
const (
	prefixKey = "ezopt"
)

// Error prefixes
const (
	ErrorPrefixKey = prefixKey + ".error"
)

const (
	ErrEmptyFlagKey           = ErrorPrefixKey + ".empty_flag"
	ErrNoFlagsKey             = ErrorPrefixKey + ".no_flags"
	ErrFlagAlreadyExistsKey   = ErrorPrefixKey + ".flag_already_exists"
	ErrFlagNotFoundKey        = ErrorPrefixKey + ".flag_not_found"
	ErrFlagExpectsValueKey    = ErrorPrefixKey + ".flag_expects_value"
	ErrInvalidExpectArgsKey   = ErrorPrefixKey + ".invalid_expect_args"
	ErrLanguageUnavailableKey = ErrorPrefixKey + ".language_unavailable"
	ErrUnsupportedFormatKey   = ErrorPrefixKey + ".unsupported_format"
	ErrFileOperationKey       = ErrorPrefixKey + ".file_operation"
	ErrSplitCommandLineKey    = ErrorPrefixKey + ".split_command_line"
	ErrUnterminatedQuoteKey   = ErrorPrefixKey + ".unterminated_quote"
	ErrUnsupportedShellKey    = ErrorPrefixKey + ".unsupported_shell"
	ErrEncodeSnapshotKey      = ErrorPrefixKey + ".encode_snapshot"
	ErrDecodeSnapshotKey      = ErrorPrefixKey + ".decode_snapshot"
	ErrConfiguringParserKey   = ErrorPrefixKey + ".configuring_parser"
)
