package storage

import "errors"

var ErrItemNotFound = errors.New("item not found in storage")
var ErrItemWithIDAlreadyExists = errors.New("item already exists")
var ErrConditionFailed = errors.New("item is not in the expected state")
var ErrAlreadyPublished = errors.New("program already has a published result")
