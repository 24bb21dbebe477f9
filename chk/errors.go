package chk

import "errors"

var (
	// ErrNilGroup indicates a nil *Group was handed to the codec.
	ErrNilGroup = errors.New("chk: nil group")
	// ErrNoSuchKey indicates the requested attribute, scalar, array or table is absent.
	ErrNoSuchKey = errors.New("chk: no such key")
	// ErrNoSuchGroup indicates the requested subgroup is absent.
	ErrNoSuchGroup = errors.New("chk: no such group")
	// ErrBadTable indicates table dimensions and payload length disagree.
	ErrBadTable = errors.New("chk: malformed table")
)
