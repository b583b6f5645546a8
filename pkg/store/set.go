package store

// SAdd inserts members, creating the set lazily, and returns the count
// of members that were newly inserted (duplicates within members or
// already present are not counted twice).
func (s *Store) SAdd(key string, members [][]byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		e = &Entry{Value: newSetValue()}
		s.data[key] = e
	} else if e.Value.Kind != KSet {
		return 0, ErrWrongType
	}

	var added int64
	for _, m := range members {
		k := string(m)
		if _, exists := e.Value.Set[k]; !exists {
			e.Value.Set[k] = struct{}{}
			added++
		}
	}
	return added, nil
}

// SRem removes members, deleting key if the set becomes empty, and
// returns the count actually removed.
func (s *Store) SRem(key string, members [][]byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return 0, nil
	}
	if e.Value.Kind != KSet {
		return 0, ErrWrongType
	}

	var removed int64
	for _, m := range members {
		k := string(m)
		if _, exists := e.Value.Set[k]; exists {
			delete(e.Value.Set, k)
			removed++
		}
	}
	s.deleteIfEmpty(key, e.Value)
	return removed, nil
}

// SMembers returns the set's members in unspecified order.
func (s *Store) SMembers(key string) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return nil, nil
	}
	if e.Value.Kind != KSet {
		return nil, ErrWrongType
	}

	out := make([][]byte, 0, len(e.Value.Set))
	for m := range e.Value.Set {
		out = append(out, []byte(m))
	}
	return out, nil
}

func (s *Store) SIsMember(key string, member []byte) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return false, nil
	}
	if e.Value.Kind != KSet {
		return false, ErrWrongType
	}
	_, exists := e.Value.Set[string(member)]
	return exists, nil
}

func (s *Store) SCard(key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return 0, nil
	}
	if e.Value.Kind != KSet {
		return 0, ErrWrongType
	}
	return int64(len(e.Value.Set)), nil
}
