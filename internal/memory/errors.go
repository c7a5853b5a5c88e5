package memory

import "fmt"

// InvalidCartridgeError is raised at construction time when the supplied
// cartridge image is smaller than the minimum flat ROM-only size. It is
// surfaced to the caller and is not recoverable.
type InvalidCartridgeError struct {
	Size int
}

func (e *InvalidCartridgeError) Error() string {
	return fmt.Sprintf(
		"invalid cartridge: got %d bytes, minimum ROM size is %d bytes (32 KiB). "+
			"Check that the full cartridge image was read from disk and was not truncated.",
		e.Size, MinCartridgeSize,
	)
}
