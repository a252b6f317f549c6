package mapper

import "errors"

var (
	ErrNotStruct = errors.New("mapper: type is not a struct")
	ErrNoFields  = errors.New("mapper: type has no mappable fields")
	ErrNoKey     = errors.New("mapper: type has no key field")
)
