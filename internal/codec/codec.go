// Package codec abstracts the compression applied to trace files on disk.
//
// Traces are line-oriented text and compress well; which codec applies is
// chosen from the trace filename's extension, so a directory can mix
// compressed and plain traces.
package codec

import "io"

// Codec pairs a streaming compressor and decompressor with the file
// extension that selects it.
type Codec interface {
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)
	// Writer wraps w to compress data written to it.
	Writer(w io.Writer) (io.WriteCloser, error)
	// Extension returns the file extension without dot (e.g., "zst", "gz").
	// Returns empty string for no compression.
	Extension() string
}
