package storage

import "errors"

var (
	ErrAlreadyInTx = errors.New("already in tx")
	ErrNotInTx     = errors.New("not in tx")
)
