package domain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors for dependency log contract violations
var (
	ErrDependencyLog = errors.New("invalid dependency log")
	ErrMissingCount  = errors.New("missing slot count")
	ErrInvalidCount  = errors.New("slot count is not a non-negative integer")
)

// DependencyLog is the sidecar file the compiler writes: a slot count on the
// first line followed by one module path per line.
type DependencyLog struct {
	Count int
	Paths []string
}

// DependencyLogError reports a dependency log that could not be used
type DependencyLogError struct {
	Path string
	Err  error
}

func (e *DependencyLogError) Error() string {
	return fmt.Sprintf("dependency log %s: %v", e.Path, e.Err)
}

func (e *DependencyLogError) Unwrap() error {
	return e.Err
}

func (e *DependencyLogError) Is(target error) bool {
	return target == ErrDependencyLog
}

// ParseCount parses the first line of a dependency log.
func ParseCount(line string) (int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, ErrMissingCount
	}
	n, err := strconv.Atoi(line)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCount, line)
	}
	return n, nil
}

// ParseDependencyLog reads a complete dependency log. Empty path lines are
// skipped; duplicates are kept in file order.
func ParseDependencyLog(r io.Reader) (*DependencyLog, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, ErrMissingCount
	}

	count, err := ParseCount(scanner.Text())
	if err != nil {
		return nil, err
	}

	log := &DependencyLog{Count: count}
	for scanner.Scan() {
		if p := scanner.Text(); p != "" {
			log.Paths = append(log.Paths, p)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return log, nil
}
