// Package resp implements the reversible mapping between byte streams
// and Frame values used by the wire protocol (spec.md §4.1), plus the
// buffered, full-duplex Connection that reads and writes them one at a
// time (spec.md §4.2).
package resp

import "strconv"

// Kind tags the five variants a Frame may hold.
type Kind int

const (
	Simple Kind = iota
	Error
	Integer
	Bulk
	Array
)

// Frame is a single unit of the wire protocol. Exactly one of the
// payload fields is meaningful for a given Kind:
//
//	Simple/Error -> Str
//	Integer      -> Int
//	Bulk         -> Bytes (nil Bytes with BulkNull set is the null bulk)
//	Array        -> Items (nil Items with ArrayNull set is the null array)
type Frame struct {
	Kind  Kind
	Str   string
	Int   int64
	Bytes []byte
	Items []Frame

	BulkNull  bool
	ArrayNull bool
}

func NewSimple(s string) Frame { return Frame{Kind: Simple, Str: s} }
func NewError(s string) Frame  { return Frame{Kind: Error, Str: s} }
func NewInteger(i int64) Frame { return Frame{Kind: Integer, Int: i} }

func NewBulk(b []byte) Frame {
	if b == nil {
		return Frame{Kind: Bulk, BulkNull: true}
	}
	return Frame{Kind: Bulk, Bytes: b}
}

func NewBulkString(s string) Frame { return NewBulk([]byte(s)) }

func NullBulk() Frame { return Frame{Kind: Bulk, BulkNull: true} }

func NewArray(items []Frame) Frame {
	if items == nil {
		return Frame{Kind: Array, ArrayNull: true}
	}
	return Frame{Kind: Array, Items: items}
}

func NullArray() Frame { return Frame{Kind: Array, ArrayNull: true} }

// IsNull reports whether f is the null bulk or the null array.
func (f Frame) IsNull() bool {
	return (f.Kind == Bulk && f.BulkNull) || (f.Kind == Array && f.ArrayNull)
}

// Encode serializes f to its wire representation. Encode is a total
// function: for every Frame f, Parse(Encode(f)) == f (spec.md §4.1's
// round-trip law).
func (f Frame) Encode() []byte {
	var buf []byte
	buf = f.appendTo(buf)
	return buf
}

func (f Frame) appendTo(buf []byte) []byte {
	switch f.Kind {
	case Simple:
		buf = append(buf, '+')
		buf = append(buf, f.Str...)
		buf = append(buf, '\r', '\n')
	case Error:
		buf = append(buf, '-')
		buf = append(buf, f.Str...)
		buf = append(buf, '\r', '\n')
	case Integer:
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, f.Int, 10)
		buf = append(buf, '\r', '\n')
	case Bulk:
		buf = append(buf, '$')
		if f.BulkNull {
			buf = append(buf, '-', '1', '\r', '\n')
			return buf
		}
		buf = strconv.AppendInt(buf, int64(len(f.Bytes)), 10)
		buf = append(buf, '\r', '\n')
		buf = append(buf, f.Bytes...)
		buf = append(buf, '\r', '\n')
	case Array:
		buf = append(buf, '*')
		if f.ArrayNull {
			buf = append(buf, '-', '1', '\r', '\n')
			return buf
		}
		buf = strconv.AppendInt(buf, int64(len(f.Items)), 10)
		buf = append(buf, '\r', '\n')
		for _, item := range f.Items {
			buf = item.appendTo(buf)
		}
	}
	return buf
}

// ArrayOfBulks is a convenience constructor used throughout the command
// layer and the AOL to build the array-of-bulk-strings shape that
// every client request and every durability record takes.
func ArrayOfBulks(parts ...[]byte) Frame {
	items := make([]Frame, len(parts))
	for i, p := range parts {
		items[i] = NewBulk(p)
	}
	return NewArray(items)
}

func ArrayOfBulkStrings(parts ...string) Frame {
	items := make([]Frame, len(parts))
	for i, p := range parts {
		items[i] = NewBulkString(p)
	}
	return NewArray(items)
}
