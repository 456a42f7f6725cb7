package client

import "errors"

var (
	ErrUnavailable   = errors.New("remote api unavailable")
	ErrBadResponse   = errors.New("bad response from remote api")
	ErrStoreNotReady = errors.New("local store not ready")
)
