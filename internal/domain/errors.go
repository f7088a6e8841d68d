package domain

import "fmt"

// ConfigError reports bad or missing configuration input. Fatal before any
// side effect; the process maps it to its own exit code.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Msg)
}

// NewConfigError builds a ConfigError from a format string.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// FetchError reports an upstream GraphQL or transport failure. The upstream
// payload is preserved verbatim for diagnosis; no retry is attempted.
type FetchError struct {
	Status  int
	Payload []byte
}

func (e *FetchError) Error() string {
	if len(e.Payload) > 0 {
		return fmt.Sprintf("fetch: status %d: %s", e.Status, e.Payload)
	}
	return fmt.Sprintf("fetch: status %d", e.Status)
}

// FilesystemError reports a missing or unreadable host document.
type FilesystemError struct {
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem: %s: %v", e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
