// Package hierarchy reads geocoder hierarchy dumps. A dump is a
// newline delimited text file (optionally zstd or gzip compressed)
// with one `<id> <json payload>` record per line. Multiple reader
// goroutines share a single sequential cursor over the stream, decode
// lines into worker local key ordered partitions and the partitions
// are merged into one globally ordered result. Malformed records never
// abort a read, they are counted in ParsingStats and skipped.
package hierarchy

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/DataDog/zstd"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/geohier/ghier/internal/constants"
	"github.com/geohier/ghier/internal/dlog"
	"github.com/geohier/ghier/internal/geo"
	"github.com/geohier/ghier/internal/pool"
)

// OpenError reports that a hierarchy dump could not be opened. It is
// the only failure surfacing before any reader goroutine starts.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open file %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

// Reader reads all entries of one hierarchy dump.
type Reader struct {
	path   string
	file   *os.File
	decomp io.Closer
	cursor *lineCursor
	decode DecodeFunc
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithDecodeFunc replaces the standard payload decoder.
func WithDecodeFunc(decode DecodeFunc) ReaderOption {
	return func(r *Reader) {
		r.decode = decode
	}
}

// NewReader opens the dump at path, transparently decoding .zst and
// .gz files. The error is always a *OpenError.
func NewReader(path string, options ...ReaderOption) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}

	reader := &Reader{path: path, file: file, decode: DecodeEntry}

	var stream io.Reader = file
	switch {
	case strings.HasSuffix(path, ".zst"):
		zstdReader := zstd.NewReader(file)
		reader.decomp = zstdReader
		stream = zstdReader
	case strings.HasSuffix(path, ".gz"):
		gzipReader, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, &OpenError{Path: path, Err: err}
		}
		reader.decomp = gzipReader
		stream = gzipReader
	}

	for _, option := range options {
		option(reader)
	}

	reader.cursor = newLineCursor(stream)
	return reader, nil
}

// Close releases the underlying dump stream.
func (r *Reader) Close() error {
	if r.decomp != nil {
		if err := r.decomp.Close(); err != nil {
			r.file.Close()
			return err
		}
	}
	return r.file.Close()
}

// ReadEntries consumes the whole dump with the given number of reader
// goroutines and returns all entries ordered by object id. The count
// is clamped to [1, constants.MaxHierarchyReaders]. Worker local
// diagnostics are summed into stats once all readers have joined, so
// stats must not be inspected concurrently with the call. A read
// failure of the underlying stream fails the run as a whole.
func (r *Reader) ReadEntries(readers int, stats *ParsingStats) ([]Entry, error) {
	dlog.Common.Info("Reading entries...")

	readers = clampReaders(readers)

	parts := make([][]Entry, readers)
	workerStats := make([]ParsingStats, readers)
	var progress atomic.Uint64

	var group errgroup.Group
	for t := 0; t < readers; t++ {
		t := t
		group.Go(func() error {
			return r.readPartition(&parts[t], &workerStats[t], &progress)
		})
	}
	err := group.Wait()

	for _, ws := range workerStats {
		stats.Add(ws)
	}
	if err != nil {
		return nil, err
	}

	if total := progress.Load(); total%constants.ReadLogBatch != 0 {
		dlog.Common.Info("Read", total, "entries")
	}

	dlog.Common.Info("Sorting entries...")
	return mergeEntries(parts), nil
}

// readPartition is the reader goroutine loop. It takes lines from the
// shared cursor until the stream ends and accumulates one key ordered
// partition plus worker local diagnostics. The stable sort keeps
// entries with equal ids in their insertion order.
func (r *Reader) readPartition(part *[]Entry, stats *ParsingStats,
	progress *atomic.Uint64) error {

	var entries []Entry
	for {
		buf, err := r.cursor.takeLine()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		r.readLine(buf.Bytes(), &entries, stats, progress)
		pool.RecycleBytesBuffer(buf)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].OsmID < entries[j].OsmID
	})
	*part = entries
	return nil
}

// readLine decodes one input line. Empty lines are skipped, malformed
// lines end up in exactly one stats counter.
func (r *Reader) readLine(line []byte, entries *[]Entry, stats *ParsingStats,
	progress *atomic.Uint64) {

	if len(line) == 0 {
		return
	}

	token, payload, found := bytes.Cut(line, []byte{' '})
	encoded, err := strconv.ParseInt(string(token), 10, 64)
	if !found || err != nil {
		dlog.Common.Warn("Cannot read osm id. Line:", string(line))
		stats.BadOsmIDs++
		return
	}

	entry, ok := r.safeDecode(payload, stats)
	if !ok {
		return
	}
	if entry.Kind == KindCount {
		stats.NumSentinels++
		return
	}

	entry.OsmID = geo.MakeObjectID(encoded)
	stats.NumLoaded++
	if n := progress.Inc(); n%constants.ReadLogBatch == 0 {
		dlog.Common.Info("Read", n, "entries")
	}

	*entries = append(*entries, entry)
}

// safeDecode invokes the decoder and converts a decoder panic into a
// plain decode failure. Panicking violates the DecodeFunc contract but
// must not tear down the run.
func (r *Reader) safeDecode(payload []byte, stats *ParsingStats) (entry Entry, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			dlog.Common.Error("Recovered from decoder panic:", rec)
			stats.BadJSONs++
			entry = Entry{}
			ok = false
		}
	}()
	return r.decode(payload, stats)
}

// clampReaders bounds the reader count to [1, MaxHierarchyReaders].
func clampReaders(readers int) int {
	if readers < 1 {
		return 1
	}
	if readers > constants.MaxHierarchyReaders {
		return constants.MaxHierarchyReaders
	}
	return readers
}
