package vtcore

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
)

// typescriptFlushSize is the buffered-write threshold before data is
// forced out to disk, per spec.md §4.7.
const typescriptFlushSize = 4096

// typescriptMaxSuffix bounds the ".1".."100" collision-avoidance suffix
// search; beyond that, recording is refused rather than looping forever.
const typescriptMaxSuffix = 100

// TypescriptRecorder implements RecordingProvider by writing a classic
// "script"-style typescript data file alongside a ".timing" file of
// "%.6f %d\n" (seconds-since-start, byte-count) lines, matching the
// on-disk format spec.md §4.7 specifies.
type TypescriptRecorder struct {
	data       *os.File
	dataWriter *bufio.Writer
	timing     *os.File
	timingWriter *bufio.Writer
	lock       *flock.Flock
	start      time.Time
	pending    int
	log        Logger
}

// NewTypescriptRecorder claims a collision-free "<path>/<name>[.N]" file
// pair exclusively (via an flock advisory lock, so two sessions racing
// on the same path/name never interleave), writes the literal start
// header, and returns a recorder ready to receive terminal output.
func NewTypescriptRecorder(path, name string, createPath bool, log Logger) (*TypescriptRecorder, error) {
	if log == nil {
		log = NewNopLogger()
	}
	if createPath {
		if err := os.MkdirAll(path, 0o700); err != nil {
			return nil, newError(ErrConfiguration, "failed to create recording path", err)
		}
	}

	dataPath, timingPath, lock, err := claimTypescriptFiles(path, name)
	if err != nil {
		return nil, err
	}

	dataFile, err := os.Create(dataPath)
	if err != nil {
		lock.Unlock()
		return nil, newError(ErrResourceExhaustion, "failed to create typescript data file", err)
	}
	timingFile, err := os.Create(timingPath)
	if err != nil {
		dataFile.Close()
		lock.Unlock()
		return nil, newError(ErrResourceExhaustion, "failed to create typescript timing file", err)
	}

	r := &TypescriptRecorder{
		data:         dataFile,
		dataWriter:   bufio.NewWriterSize(dataFile, typescriptFlushSize),
		timing:       timingFile,
		timingWriter: bufio.NewWriter(timingFile),
		lock:         lock,
		start:        time.Now(),
		log:          log,
	}

	header := fmt.Sprintf("Script started on %s [id=%s]\n", r.start.Format(time.RFC1123), uuid.New().String())
	r.dataWriter.WriteString(header)

	return r, nil
}

// claimTypescriptFiles finds the first "<name>" or "<name>.N" (N from 1
// to typescriptMaxSuffix) whose .lock companion it can exclusively
// acquire, returning the data/timing paths and the held lock.
func claimTypescriptFiles(path, name string) (dataPath, timingPath string, lock *flock.Flock, err error) {
	for n := 0; n <= typescriptMaxSuffix; n++ {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s.%d", name, n)
		}
		base := filepath.Join(path, candidate)
		l := flock.New(base + ".lock")
		ok, lerr := l.TryLock()
		if lerr != nil {
			continue
		}
		if !ok {
			continue
		}
		if _, statErr := os.Stat(base); statErr == nil {
			l.Unlock()
			continue
		}
		return base, base + ".timing", l, nil
	}
	return "", "", nil, newError(ErrResourceExhaustion, "no available typescript filename slot", nil)
}

// Write appends data to the typescript, recording a timing line of
// elapsed seconds and byte count, and flushes once the buffered amount
// crosses typescriptFlushSize. Best-effort: write errors are logged,
// never returned, since recording failures must not interrupt the
// terminal session.
func (r *TypescriptRecorder) Write(data []byte) {
	if len(data) == 0 {
		return
	}
	n, err := r.dataWriter.Write(data)
	if err != nil {
		r.log.Warn("typescript data write failed", "error", err)
		return
	}

	elapsed := time.Since(r.start).Seconds()
	fmt.Fprintf(r.timingWriter, "%.6f %d\n", elapsed, n)

	r.pending += n
	if r.pending >= typescriptFlushSize {
		r.dataWriter.Flush()
		r.timingWriter.Flush()
		r.pending = 0
	}
}

// Close writes the literal footer line, flushes and closes both files,
// and releases the exclusive lock.
func (r *TypescriptRecorder) Close() error {
	footer := fmt.Sprintf("\nScript done on %s\n", time.Now().Format(time.RFC1123))
	r.dataWriter.WriteString(footer)
	r.dataWriter.Flush()
	r.timingWriter.Flush()

	dataErr := r.data.Close()
	timingErr := r.timing.Close()
	r.lock.Unlock()

	if dataErr != nil {
		return dataErr
	}
	return timingErr
}
