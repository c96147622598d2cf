package trace

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/YouXiangyu/cache-algorithm-simulator/internal/codec"
	"github.com/YouXiangyu/cache-algorithm-simulator/internal/codec/gzipcodec"
	"github.com/YouXiangyu/cache-algorithm-simulator/internal/codec/noopcodec"
	"github.com/YouXiangyu/cache-algorithm-simulator/internal/codec/zstdcodec"
	"github.com/YouXiangyu/cache-algorithm-simulator/policy"
)

// CodecByName returns the codec for a compression name ("zstd", "gzip",
// "none" or empty).
func CodecByName(name string) (codec.Codec, error) {
	switch name {
	case "zstd":
		return zstdcodec.New(), nil
	case "gzip":
		return gzipcodec.New(), nil
	case "none", "":
		return noopcodec.New(), nil
	default:
		return nil, fmt.Errorf("trace: unknown compression %q", name)
	}
}

// codecForPath selects a codec by file extension: .zst is zstd, .gz is
// gzip, anything else is read and written uncompressed.
func codecForPath(path string) codec.Codec {
	switch filepath.Ext(path) {
	case ".zst":
		return zstdcodec.New()
	case ".gz":
		return gzipcodec.New()
	default:
		return noopcodec.New()
	}
}

// WriteFile writes keys to path as newline-separated decimal values,
// compressed per the file extension.
func WriteFile(path string, keys []policy.Key) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	defer f.Close()

	wc, err := codecForPath(path).Writer(f)
	if err != nil {
		return fmt.Errorf("wrapping writer: %w", err)
	}

	w := bufio.NewWriter(wc)
	for _, key := range keys {
		if _, err := w.WriteString(strconv.FormatInt(int64(key), 10)); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing trace: %w", err)
	}
	// The noop codec hands back the file itself, so this close may be the
	// file close; the deferred one then turns into a no-op.
	if err := wc.Close(); err != nil {
		return fmt.Errorf("closing codec writer: %w", err)
	}
	return nil
}

// ReadFile reads a newline-separated trace from path, decompressing per
// the file extension. Blank lines are skipped.
func ReadFile(path string) ([]policy.Key, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer f.Close()

	rc, err := codecForPath(path).Reader(f)
	if err != nil {
		return nil, fmt.Errorf("wrapping reader: %w", err)
	}
	defer rc.Close()

	var keys []policy.Key
	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing trace line %d: %w", len(keys)+1, err)
		}
		keys = append(keys, policy.Key(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return keys, nil
}
