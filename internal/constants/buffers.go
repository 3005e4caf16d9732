package constants

// Buffer size constants in bytes
const (
	// LineBufferInitialCapacity is the initial capacity of pooled line
	// buffers (4KB). Hierarchy dump lines are JSON documents and tend to
	// be a few hundred bytes, with occasional larger address blocks.
	LineBufferInitialCapacity = 4096

	// ReadBufferSize is the size of the buffered reader in front of the
	// dump stream (64KB).
	ReadBufferSize = 64 * 1024

	// JournalFrameLimit is the maximum accepted size of a single eye
	// journal frame (1MB). Larger length prefixes indicate corruption.
	JournalFrameLimit = 1024 * 1024
)
