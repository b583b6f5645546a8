package store

// HSet sets field to value, creating the hash lazily. Returns true if
// field was newly created, false if it overwrote an existing field.
func (s *Store) HSet(key string, field, value []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		e = &Entry{Value: newHashValue()}
		s.data[key] = e
	} else if e.Value.Kind != KHash {
		return false, ErrWrongType
	}

	k := string(field)
	_, existed := e.Value.Hash[k]
	e.Value.Hash[k] = value
	return !existed, nil
}

func (s *Store) HGet(key string, field []byte) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return nil, false, nil
	}
	if e.Value.Kind != KHash {
		return nil, false, ErrWrongType
	}
	v, exists := e.Value.Hash[string(field)]
	return v, exists, nil
}

// HGetAll returns a flat [field0, value0, field1, value1, ...] slice
// in unspecified order (spec.md §4.3).
func (s *Store) HGetAll(key string) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return nil, nil
	}
	if e.Value.Kind != KHash {
		return nil, ErrWrongType
	}

	out := make([][]byte, 0, len(e.Value.Hash)*2)
	for f, v := range e.Value.Hash {
		out = append(out, []byte(f), v)
	}
	return out, nil
}

// HDel removes fields, deleting key if the hash becomes empty, and
// returns the count actually removed.
func (s *Store) HDel(key string, fields [][]byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return 0, nil
	}
	if e.Value.Kind != KHash {
		return 0, ErrWrongType
	}

	var removed int64
	for _, f := range fields {
		k := string(f)
		if _, exists := e.Value.Hash[k]; exists {
			delete(e.Value.Hash, k)
			removed++
		}
	}
	s.deleteIfEmpty(key, e.Value)
	return removed, nil
}

func (s *Store) HExists(key string, field []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return false, nil
	}
	if e.Value.Kind != KHash {
		return false, ErrWrongType
	}
	_, exists := e.Value.Hash[string(field)]
	return exists, nil
}

func (s *Store) HLen(key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return 0, nil
	}
	if e.Value.Kind != KHash {
		return 0, ErrWrongType
	}
	return int64(len(e.Value.Hash)), nil
}
