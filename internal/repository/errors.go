package repository

import "fmt"

// StorageError reports a fault in the backing database.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
