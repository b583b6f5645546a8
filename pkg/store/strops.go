package store

import (
	"errors"
	"strconv"
)

// ErrNotInteger mirrors spec.md §6's requirement that INCR/DECR/INCRBY
// reject a string value that doesn't parse as a base-10 int64.
var ErrNotInteger = errors.New("value is not an integer or out of range")

// IncrBy adds delta to key's integer value, creating key with base 0
// first if absent, and returns the new value (spec.md §6).
func (s *Store) IncrBy(key string, delta int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		e = &Entry{Value: newStrValue(nil)}
		s.data[key] = e
	} else if e.Value.Kind != KStr {
		return 0, ErrWrongType
	}

	cur, err := parseStoredInt(e.Value.Str)
	if err != nil {
		return 0, err
	}
	next := cur + delta
	if (delta > 0 && next < cur) || (delta < 0 && next > cur) {
		return 0, ErrNotInteger
	}
	e.Value.Str = []byte(strconv.FormatInt(next, 10))
	return next, nil
}

func parseStoredInt(b []byte) (int64, error) {
	if len(b) == 0 {
		return 0, nil
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, ErrNotInteger
	}
	return n, nil
}

// Append concatenates value onto key's string (creating it if absent)
// and returns the resulting length (spec.md §6).
func (s *Store) Append(key string, value []byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		e = &Entry{Value: newStrValue(nil)}
		s.data[key] = e
	} else if e.Value.Kind != KStr {
		return 0, ErrWrongType
	}

	e.Value.Str = append(e.Value.Str, value...)
	return int64(len(e.Value.Str)), nil
}

// StrLen returns the length of key's string value, 0 if absent.
func (s *Store) StrLen(key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return 0, nil
	}
	if e.Value.Kind != KStr {
		return 0, ErrWrongType
	}
	return int64(len(e.Value.Str)), nil
}
