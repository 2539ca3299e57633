package secrets

import "errors"

// ErrReadFile indicates that the secrets file exists but could not be read or parsed.
var ErrReadFile = errors.New("failed to read secrets file")
