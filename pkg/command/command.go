// Package command implements minikv's command layer: parsing a Frame
// into a typed Command and applying it to a Store and Broker
// (spec.md §4.6). The verb-keyed registry and per-verb build funcs are
// grounded on the teacher's minicli.Register/Handler dispatch
// (pkg/minicli/minicli.go, handler.go) stripped of its pattern-grammar
// engine — minikv's verbs need fixed/variadic arity checks, not a
// trie-matched command language — and the flat, field-based Command
// shape follows internal/ron/command.go's ron.Command (see DESIGN.md).
package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Saksham932007/minikv/pkg/broker"
	"github.com/Saksham932007/minikv/pkg/resp"
	"github.com/Saksham932007/minikv/pkg/store"
)

// applyFunc is the per-command entry point bound at parse time, with
// every argument it needs already validated and captured.
type applyFunc func(s *store.Store, br *broker.Broker) resp.Frame

// Command is the tagged-variant result of parsing a Frame: Verb plus
// Args identify what was asked for (used by session-layer concerns
// like AUTH and QUIT that sit outside Store/Broker), and apply carries
// the bound per-verb behavior (spec.md §4.6).
type Command struct {
	Verb string
	Args [][]byte // raw bulk arguments, verb excluded
	Raw  resp.Frame

	write bool
	apply applyFunc
}

// Apply executes the command against s and br, returning the reply
// Frame and whether this verb belongs to the write-command set that
// drives the AOL (spec.md §4.4's fixed list plus SPEC_FULL.md §6's
// supplemental writes — membership is static per verb, independent of
// whether this particular invocation changed anything).
func (c *Command) Apply(s *store.Store, br *broker.Broker) (resp.Frame, bool) {
	return c.apply(s, br), c.write
}

type verbDef struct {
	minArgs, maxArgs int // maxArgs == -1 means unbounded
	build            func(args [][]byte) (*Command, error)
	write            bool
}

var registry = map[string]*verbDef{}

func register(verb string, minArgs, maxArgs int, write bool, build func(args [][]byte) (*Command, error)) {
	registry[verb] = &verbDef{minArgs: minArgs, maxArgs: maxArgs, write: write, build: build}
}

// Parse decodes a Command from f: f must be an Array of Bulks whose
// first element, ASCII-uppercased, selects the verb (spec.md §4.6
// steps 1-3). Unknown verbs are not an error here — Parse succeeds
// with a Command whose Apply replies "ERR unknown command" — matching
// spec.md's "Unknown command whose apply returns" wording.
func Parse(f resp.Frame) (*Command, error) {
	if f.Kind != resp.Array || f.ArrayNull || len(f.Items) == 0 {
		return nil, protoErrf("expected array of bulk strings")
	}
	parts := make([][]byte, 0, len(f.Items))
	for _, item := range f.Items {
		if item.Kind != resp.Bulk || item.BulkNull {
			return nil, protoErrf("expected array of bulk strings")
		}
		parts = append(parts, item.Bytes)
	}

	verb := strings.ToUpper(string(parts[0]))
	args := parts[1:]

	def, ok := registry[verb]
	if !ok {
		return &Command{Verb: verb, Args: args, Raw: f, apply: func(*store.Store, *broker.Broker) resp.Frame {
			return errUnknownCommand(verb)
		}}, nil
	}

	if len(args) < def.minArgs || (def.maxArgs >= 0 && len(args) > def.maxArgs) {
		return nil, syntaxErr(fmt.Sprintf("wrong number of arguments for '%s' command", strings.ToLower(verb)))
	}

	cmd, err := def.build(args)
	if err != nil {
		return nil, err
	}
	cmd.Verb = verb
	cmd.Args = args
	cmd.Raw = f
	cmd.write = def.write
	return cmd, nil
}

// protoErrf builds a Syntax-kind parse error (spec.md §7); it is
// distinct from resp.ProtocolError, which is reserved for malformed
// wire bytes below the Frame level.
type ParseError struct{ Msg string }

func (e *ParseError) Error() string { return e.Msg }

func protoErrf(format string, args ...interface{}) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

func syntaxErr(msg string) error {
	return &ParseError{Msg: "ERR " + msg}
}

// ErrReply renders a parse error as the error Frame the session loop
// writes back to the client (spec.md §4.7 step 3).
func ErrReply(err error) resp.Frame {
	return resp.NewError(err.Error())
}

func errUnknownCommand(verb string) resp.Frame {
	return resp.NewError(fmt.Sprintf("ERR unknown command '%s'", verb))
}

func errWrongType() resp.Frame {
	return resp.NewError(store.ErrWrongType.Error())
}

func errNotInteger() resp.Frame {
	return resp.NewError("ERR " + store.ErrNotInteger.Error())
}

// parseInt64 parses a command argument as a base-10 signed integer,
// surfacing spec.md §4.6 step 4's exact error wording on failure.
func parseInt64(b []byte) (int64, error) {
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0, syntaxErr("value is not an integer or out of range")
	}
	return n, nil
}
