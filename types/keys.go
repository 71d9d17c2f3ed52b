// Package types provides common type definitions for the ezopt library.
// This file contains constants for the non-error translation keys used throughout the library.
package types

// Prefix for all ezopt translation keys
const (
	PrefixKey = "ezopt"
)

const (
	MessagePrefixKey = PrefixKey + ".msg"
)

// Usage and pretty-print headings
const (
	MsgUsageKey        = MessagePrefixKey + ".usage"
	MsgOptionsKey      = MessagePrefixKey + ".options"
	MsgExamplesKey     = MessagePrefixKey + ".examples"
	MsgArgKey          = MessagePrefixKey + ".arg"
	MsgFirstArgsKey    = MessagePrefixKey + ".first_args"
	MsgLastArgsKey     = MessagePrefixKey + ".last_args"
	MsgUnknownArgsKey  = MessagePrefixKey + ".unknown_args"
	MsgOptionsTitleKey = MessagePrefixKey + ".options_title"
	MsgSetKey          = MessagePrefixKey + ".set"
	MsgNotSetKey       = MessagePrefixKey + ".not_set"
	MsgDefaultKey      = MessagePrefixKey + ".default"
)

