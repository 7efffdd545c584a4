package domain

import "errors"

// ErrBlobNotFound is an error thrown when a blob is unknown or not yet readable
var ErrBlobNotFound = errors.New("blob not found")

// ErrAssetNotFound is an error thrown when an asset is not found
var ErrAssetNotFound = errors.New("asset not found")

// ErrChunkNotFound is an error thrown when a stored chunk is not found
var ErrChunkNotFound = errors.New("chunk not found")

// ErrAlreadyExists is an error thrown when an entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrAlreadyFinalized is an error thrown when a blob is modified after it was finalized
var ErrAlreadyFinalized = errors.New("blob already finalized")

// ErrChunkSequence is an error thrown when a chunk arrives with a gap or duplicate sequence number
var ErrChunkSequence = errors.New("chunk sequence gap or duplicate")

// ErrLengthMismatch is an error thrown when the declared blob length disagrees with the written chunks
var ErrLengthMismatch = errors.New("blob length mismatch")

// ErrIncompleteSequence is an error thrown when a blob is finalized with chunks missing
var ErrIncompleteSequence = errors.New("chunk sequence incomplete")

// ErrCorruptBlob is an error thrown when a finalized blob is missing an expected chunk
var ErrCorruptBlob = errors.New("blob is missing a stored chunk")

// ErrInvalidReference is an error thrown when an asset references a blob that is not complete
var ErrInvalidReference = errors.New("referenced blob is not complete")

// ErrChunkWrite is an error thrown when the chunk store rejects a write
var ErrChunkWrite = errors.New("chunk write failed")

// ErrTimeout is an error thrown when a storage operation exceeds its deadline
var ErrTimeout = errors.New("storage operation timed out")

// ErrInvalidRange is an error thrown when a requested byte range cannot be satisfied
var ErrInvalidRange = errors.New("requested range not satisfiable")
