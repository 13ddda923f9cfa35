package logger

import (
	"os"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gofrs/flock"
)

// LogFilePermissions is the mode used when the log file is created.
const LogFilePermissions = 0o600

const lockSuffix = ".lock"

// FileWriter appends to a log file shared by concurrently running hook
// processes. Every Write holds an exclusive lock on "<path>.lock".
type FileWriter struct {
	mu   sync.Mutex
	file *os.File
	lock *flock.Flock
}

// OpenFile opens path for appending, creating it if necessary.
func OpenFile(path string) (*FileWriter, error) {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermissions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open log file")
	}

	return &FileWriter{
		file: file,
		lock: flock.New(path + lockSuffix),
	}, nil
}

// Write appends p while holding the cross-process lock.
func (w *FileWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.lock.Lock(); err != nil {
		return 0, errors.Wrap(err, "failed to lock log file")
	}
	defer func() {
		_ = w.lock.Unlock()
	}()

	return w.file.Write(p)
}

// Close closes the log file and releases the lock file handle.
func (w *FileWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	lockErr := w.lock.Close()
	if err := w.file.Close(); err != nil {
		return errors.Wrap(err, "failed to close log file")
	}

	return errors.Wrap(lockErr, "failed to close log lock")
}

// NewFile returns a Logger appending to the file at path. The returned
// FileWriter must be closed by the caller.
func NewFile(path string, level Level) (Logger, *FileWriter, error) {
	w, err := OpenFile(path)
	if err != nil {
		return nil, nil, err
	}

	return New(w, level), w, nil
}
