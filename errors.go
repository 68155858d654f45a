package picoarg

import "fmt"

// OptionExpectedError reports a token that does not look like an option.
type OptionExpectedError struct {
	Token string
}

func (e OptionExpectedError) Error() string {
	return fmt.Sprintf("expected an option, found %q", e.Token)
}

// UnknownOptionError reports a key with no matching declaration.
type UnknownOptionError struct {
	Key byte
}

func (e UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %q", e.Key)
}

// MissingValueError reports an option that requires an inline value but
// whose token carries none.
type MissingValueError struct {
	Key byte
}

func (e MissingValueError) Error() string {
	return fmt.Sprintf("option %q expects a value", e.Key)
}

// UnexpectedValueError reports an option declared without a value whose
// token carries one anyway.
type UnexpectedValueError struct {
	Key   byte
	Value string
}

func (e UnexpectedValueError) Error() string {
	return fmt.Sprintf("option %q does not take a value", e.Key)
}
