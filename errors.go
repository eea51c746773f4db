package chash

import "errors"

// ErrKeyNotFound is returned by At when the key is absent
var ErrKeyNotFound = errors.New("chash: key not found")
