package store

import "container/list"

// Kind tags the four Value variants spec.md §3.2 describes, plus a
// zero value meaning "no entry".
type Kind int

const (
	None Kind = iota
	KStr
	KList
	KSet
	KHash
)

func (k Kind) String() string {
	switch k {
	case KStr:
		return "string"
	case KList:
		return "list"
	case KSet:
		return "set"
	case KHash:
		return "hash"
	default:
		return "none"
	}
}

// Value is a tagged sum with four variants and no variant ever
// observably empty once stored — callers that remove the last element
// of a List/Set/Hash must delete the key from the Store in the same
// operation (spec.md §3.2).
type Value struct {
	Kind Kind

	Str  []byte
	List *list.List // each Value is a []byte
	Set  map[string]struct{}
	Hash map[string][]byte
}

func newStrValue(b []byte) Value { return Value{Kind: KStr, Str: b} }
func newListValue() Value        { return Value{Kind: KList, List: list.New()} }
func newSetValue() Value         { return Value{Kind: KSet, Set: make(map[string]struct{})} }
func newHashValue() Value        { return Value{Kind: KHash, Hash: make(map[string][]byte)} }

func (v Value) listLen() int {
	if v.List == nil {
		return 0
	}
	return v.List.Len()
}
