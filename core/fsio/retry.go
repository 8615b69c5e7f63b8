// Package fsio wraps the destructive filesystem operations of the pipeline
// with bounded retries. Deleting and recreating the output root races against
// handles the OS has not released yet, so both operations tolerate a burst of
// access-denied and not-found errors before giving up.
package fsio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// maxAttempts is the fixed ceiling for every retried operation.
const maxAttempts = 10

// baseBackoff is the first exponential backoff step for access-denied errors.
const baseBackoff = 10 * time.Millisecond

// Classification of a failed attempt.
type errClass int

const (
	errFatal errClass = iota
	errAccessDenied
	errNotFound
)

func classify(err error) errClass {
	switch {
	case err == nil:
		return errFatal
	case errors.Is(err, fs.ErrPermission):
		return errAccessDenied
	case errors.Is(err, fs.ErrNotExist):
		return errNotFound
	default:
		return errFatal
	}
}

// Backoff maps an attempt number (starting at 0) to a sleep duration.
type Backoff func(attempt int) time.Duration

// ExponentialBackoff doubles the base delay per attempt.
func ExponentialBackoff(base time.Duration) Backoff {
	return func(attempt int) time.Duration {
		return base << attempt
	}
}

// NoBackoff retries immediately.
func NoBackoff() Backoff {
	return func(int) time.Duration { return 0 }
}

// Retry runs op up to attempts times, sleeping per backoff between attempts
// for which retryable returns true. A non-retryable error or an exhausted
// ceiling surfaces the last error.
func Retry(attempts int, backoff Backoff, retryable func(error) bool, op func() error) error {
	var last error
	for attempt := 0; attempt < attempts; attempt++ {
		last = op()
		if last == nil {
			return nil
		}
		if !retryable(last) {
			return last
		}
		time.Sleep(backoff(attempt))
	}
	return fmt.Errorf("gave up after %d attempts: %w", attempts, last)
}

// RecreateDir deletes path and recreates it as an empty directory.
// Access-denied errors back off exponentially (a handle may still be closing
// after the delete); not-found errors retry immediately since recreation is
// cheap.
func RecreateDir(path string) error {
	if err := Retry(maxAttempts, ExponentialBackoff(baseBackoff), retryableDelete, func() error {
		return os.RemoveAll(path)
	}); err != nil {
		return fmt.Errorf("failed to clear directory %s: %w", path, err)
	}

	if err := Retry(maxAttempts, NoBackoff(), retryableCreate, func() error {
		return os.MkdirAll(path, os.ModePerm)
	}); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// CreateFile opens path for writing, creating parent directories as needed
// and retrying through transient contention. Access-denied attempts back off
// exponentially; a missing parent is recreated and retried immediately.
func CreateFile(path string) (*os.File, error) {
	var f *os.File
	lastClass := errFatal
	backoff := func(attempt int) time.Duration {
		if lastClass == errNotFound {
			return 0
		}
		return ExponentialBackoff(baseBackoff)(attempt)
	}

	err := Retry(maxAttempts, backoff, retryableCreate, func() error {
		var err error
		f, err = os.Create(path)
		lastClass = classify(err)
		if lastClass == errNotFound {
			if mkErr := os.MkdirAll(filepath.Dir(path), os.ModePerm); mkErr != nil {
				return mkErr
			}
		}
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}
	return f, nil
}

// WriteFile writes data to path through CreateFile.
func WriteFile(path string, data []byte) error {
	f, err := CreateFile(path)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return f.Close()
}

func retryableDelete(err error) bool {
	// RemoveAll on a vanished path already succeeds, so only contention
	// matters here.
	return classify(err) == errAccessDenied
}

func retryableCreate(err error) bool {
	switch classify(err) {
	case errAccessDenied, errNotFound:
		return true
	default:
		return false
	}
}
