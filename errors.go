package binheap

import "errors"

var (
	// ErrEmptyHeap is returned by operations that need at least one element.
	ErrEmptyHeap = errors.New("binheap: heap is empty")

	// ErrInvalidArgument is returned for nil heap arguments, nil item
	// handles, handles whose element was already removed, and negative
	// decrease amounts. These are caller contract violations, not transient
	// conditions.
	ErrInvalidArgument = errors.New("binheap: invalid argument")
)
