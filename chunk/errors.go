package chunk

import "errors"

var (
	// ErrInvalidUTF8 is returned for text which is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("chunk: invalid UTF-8")
	// ErrChunkTooLarge is returned for text longer than MaxBytes.
	ErrChunkTooLarge = errors.New("chunk: text exceeds chunk capacity")
	// ErrIndexOutOfBounds is returned for byte offsets outside a chunk.
	ErrIndexOutOfBounds = errors.New("chunk: index out of bounds")
	// ErrNotCharBoundary is returned for byte offsets inside a character.
	ErrNotCharBoundary = errors.New("chunk: offset is not a char boundary")
)
