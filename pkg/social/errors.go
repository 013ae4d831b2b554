package social

import "errors"

// ErrPersonNotFound is returned by GetPerson when no person has the given id.
var ErrPersonNotFound = errors.New("person not found")
