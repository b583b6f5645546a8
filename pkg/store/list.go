package store

// LPush/RPush create the list if absent and fail WRONGTYPE otherwise,
// returning the new length (spec.md §4.3).

func (s *Store) LPush(key string, values [][]byte) (int64, error) {
	return s.pushList(key, values, true)
}

func (s *Store) RPush(key string, values [][]byte) (int64, error) {
	return s.pushList(key, values, false)
}

func (s *Store) pushList(key string, values [][]byte, front bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		e = &Entry{Value: newListValue()}
		s.data[key] = e
	} else if e.Value.Kind != KList {
		return 0, ErrWrongType
	}

	for _, v := range values {
		if front {
			e.Value.List.PushFront(v)
		} else {
			e.Value.List.PushBack(v)
		}
	}
	return int64(e.Value.listLen()), nil
}

// LPop/RPop remove and return the list's head/tail, deleting the key
// if it becomes empty. Returns (nil, false, nil) if absent.

func (s *Store) LPop(key string) ([]byte, bool, error) {
	return s.popList(key, true)
}

func (s *Store) RPop(key string) ([]byte, bool, error) {
	return s.popList(key, false)
}

func (s *Store) popList(key string, front bool) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return nil, false, nil
	}
	if e.Value.Kind != KList {
		return nil, false, ErrWrongType
	}

	var popped []byte
	if front {
		front := e.Value.List.Front()
		if front == nil {
			return nil, false, nil
		}
		popped = front.Value.([]byte)
		e.Value.List.Remove(front)
	} else {
		back := e.Value.List.Back()
		if back == nil {
			return nil, false, nil
		}
		popped = back.Value.([]byte)
		e.Value.List.Remove(back)
	}

	s.deleteIfEmpty(key, e.Value)
	return popped, true, nil
}

// LRange returns an inclusive, Redis-style slice with negative
// indexing (-1 == last element). Out-of-range bounds clamp to an
// empty slice rather than erroring (spec.md §4.3).
func (s *Store) LRange(key string, start, stop int64) ([][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return nil, nil
	}
	if e.Value.Kind != KList {
		return nil, ErrWrongType
	}

	n := int64(e.Value.listLen())
	start, stop = clampRange(start, stop, n)
	if start > stop {
		return nil, nil
	}

	out := make([][]byte, 0, stop-start+1)
	i := int64(0)
	for el := e.Value.List.Front(); el != nil; el = el.Next() {
		if i >= start && i <= stop {
			out = append(out, el.Value.([]byte))
		}
		i++
		if i > stop {
			break
		}
	}
	return out, nil
}

// LLen returns the list's length (0 if absent).
func (s *Store) LLen(key string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return 0, nil
	}
	if e.Value.Kind != KList {
		return 0, ErrWrongType
	}
	return int64(e.Value.listLen()), nil
}

// clampRange normalizes Redis-style start/stop (negative indices count
// from the end) against a sequence of length n, clamping to a valid
// [0, n-1] inclusive range or an empty range when nothing overlaps.
func clampRange(start, stop, n int64) (int64, int64) {
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}
	return start, stop
}
