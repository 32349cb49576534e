package inspect

import (
	"bytes"
	"fmt"
	"math/big"
	"reflect"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/conlog/conlog/hostenv"
)

// Sentinels emitted in place of content the limits cut off.
const (
	maxDepthSentinel = "[Max Depth Reached]"
	circularSentinel = "[Circular Reference]"
)

// Options controls how values are rendered. The zero value is legal but
// renders almost nothing useful (depth 0, length 0); start from
// DefaultOptions and override.
type Options struct {
	// MaxDepth is the deepest container level that is still rendered.
	// Values nested below it render as [Max Depth Reached].
	MaxDepth int

	// MaxStringLength is the largest string rendered verbatim, in runes.
	// Longer strings are cut and annotated with their original length.
	MaxStringLength int

	// CircularHandling enables identity-based cycle detection. When
	// false, cyclic inputs are bounded by MaxDepth alone.
	CircularHandling bool

	// ElementFormat selects how host UI elements render.
	ElementFormat ElementFormat

	// PrettyPrint places each container entry on its own line, indented
	// by IndentSize spaces per depth level.
	PrettyPrint bool

	// IndentSize is the pretty-print indent unit (default 2).
	IndentSize int

	// Colors wraps rendered tokens in ANSI colors. Only effective when
	// Context.ANSIColor also holds.
	Colors bool

	// Context describes the execution context capabilities.
	Context hostenv.Context
}

// DefaultOptions returns the standard rendering options.
func DefaultOptions() Options {
	return Options{
		MaxDepth:         5,
		MaxStringLength:  10000,
		CircularHandling: true,
		ElementFormat:    ElementSummary,
		IndentSize:       2,
	}
}

// Inspector renders values according to a fixed set of Options.
type Inspector struct {
	opts   Options
	colors bool
	indent string
}

// New creates an Inspector. Negative limits are clamped to zero; a
// non-positive indent falls back to two spaces.
func New(opts Options) *Inspector {
	if opts.MaxDepth < 0 {
		opts.MaxDepth = 0
	}
	if opts.MaxStringLength < 0 {
		opts.MaxStringLength = 0
	}
	if opts.IndentSize <= 0 {
		opts.IndentSize = 2
	}
	return &Inspector{
		opts:   opts,
		colors: opts.Colors && opts.Context.ANSIColor,
		indent: strings.Repeat(" ", opts.IndentSize),
	}
}

// Options returns a copy of the inspector's options.
func (ins *Inspector) Options() Options {
	return ins.opts
}

var defaultInspector = New(DefaultOptions())

// Value renders v with DefaultOptions.
func Value(v interface{}) string {
	return defaultInspector.Inspect(v)
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// visitKey identifies a container by address. The kind disambiguates
// distinct containers that share a base address, such as a struct and its
// first field.
type visitKey struct {
	ptr  uintptr
	kind reflect.Kind
}

// state is the per-call walk state. It is owned by exactly one Inspect
// call and discarded when the call returns.
type state struct {
	buf     *bytes.Buffer
	visited map[visitKey]struct{}
}

func (st *state) seen(k visitKey) bool {
	_, ok := st.visited[k]
	return ok
}

func (st *state) mark(k visitKey) {
	if st.visited == nil {
		st.visited = make(map[visitKey]struct{})
	}
	st.visited[k] = struct{}{}
}

// Inspect renders v into a bounded string. It never panics; if rendering
// itself fails the diagnostic placeholder is returned instead.
func (ins *Inspector) Inspect(v interface{}) (out string) {
	buf := getBuffer()
	defer putBuffer(buf)
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("[Object: failed to stringify - %v]", r)
		}
	}()

	st := &state{buf: buf}
	if v == nil {
		ins.token(st, tokenNil, "null")
	} else {
		ins.value(st, reflect.ValueOf(v), 0)
	}
	return buf.String()
}

// Undefined marks a value as absent, as distinct from a present null.
// Facades that distinguish "no value supplied" from "nil supplied" pass
// Undefined{} for the former.
type Undefined struct{}

var (
	durationType  = reflect.TypeOf(time.Duration(0))
	undefinedType = reflect.TypeOf(Undefined{})
)

// value renders a single value. The depth check runs at entry, before any
// dispatch, so the recursion is bounded at MaxDepth+1 frames regardless of
// the value's shape.
func (ins *Inspector) value(st *state, rv reflect.Value, depth int) {
	if !rv.IsValid() {
		ins.token(st, tokenNil, "undefined")
		return
	}
	if rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			ins.token(st, tokenNil, "null")
			return
		}
		rv = rv.Elem()
	}
	if rv.Type() == undefinedType {
		ins.token(st, tokenNil, "undefined")
		return
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		if rv.IsNil() {
			ins.token(st, tokenNil, "null")
			return
		}
	}

	if depth > ins.opts.MaxDepth {
		ins.token(st, tokenSentinel, maxDepthSentinel)
		return
	}

	switch rv.Kind() {
	case reflect.String:
		ins.stringValue(st, rv.String())
		return
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Type() == durationType {
			ins.token(st, tokenNumber, time.Duration(rv.Int()).String())
			return
		}
		ins.token(st, tokenNumber, strconv.FormatInt(rv.Int(), 10))
		return
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		ins.token(st, tokenNumber, strconv.FormatUint(rv.Uint(), 10))
		return
	case reflect.Float32:
		ins.token(st, tokenNumber, strconv.FormatFloat(rv.Float(), 'g', -1, 32))
		return
	case reflect.Float64:
		ins.token(st, tokenNumber, strconv.FormatFloat(rv.Float(), 'g', -1, 64))
		return
	case reflect.Complex64:
		ins.token(st, tokenNumber, strconv.FormatComplex(rv.Complex(), 'g', -1, 64))
		return
	case reflect.Complex128:
		ins.token(st, tokenNumber, strconv.FormatComplex(rv.Complex(), 'g', -1, 128))
		return
	case reflect.Bool:
		ins.token(st, tokenBool, strconv.FormatBool(rv.Bool()))
		return
	case reflect.Func:
		ins.funcValue(st, rv)
		return
	}

	// Capability-typed special forms. Checked after primitives so a named
	// numeric or string type with extra methods still renders literally,
	// and before container traversal so time.Time does not render as a
	// bare struct.
	if rv.CanInterface() {
		switch x := rv.Interface().(type) {
		case Element:
			ins.element(st, x)
			return
		case error:
			ins.errorValue(st, x)
			return
		case time.Time:
			ins.token(st, tokenPlain, x.Format(time.RFC3339))
			return
		case *regexp.Regexp:
			ins.token(st, tokenString, x.String())
			return
		case *big.Int:
			ins.token(st, tokenNumber, x.String()+"n")
			return
		}
	}

	switch rv.Kind() {
	case reflect.Pointer:
		// Pointers are transparent: the pointee renders at the same
		// depth, but the pointer identity participates in cycle checks.
		// Zero-size pointees all share one runtime address and cannot
		// cycle, so they are not registered.
		if ins.opts.CircularHandling && rv.Type().Elem().Size() > 0 {
			k := visitKey{rv.Pointer(), reflect.Pointer}
			if st.seen(k) {
				ins.token(st, tokenSentinel, circularSentinel)
				return
			}
			st.mark(k)
		}
		ins.value(st, rv.Elem(), depth)
	case reflect.Slice, reflect.Array:
		ins.sequence(st, rv, depth)
	case reflect.Map:
		ins.mapValue(st, rv, depth)
	case reflect.Struct:
		ins.structValue(st, rv, depth)
	default:
		ins.token(st, tokenPlain, fmt.Sprintf("%v", rv))
	}
}

// stringValue renders a string, cutting it at MaxStringLength runes. The
// boundary is strictly greater-than: a string of exactly the limit renders
// unchanged.
func (ins *Inspector) stringValue(st *state, s string) {
	max := ins.opts.MaxStringLength
	total := utf8.RuneCountInString(s)
	if total <= max {
		ins.token(st, tokenString, s)
		return
	}
	cut := len(s)
	count := 0
	for i := range s {
		if count == max {
			cut = i
			break
		}
		count++
	}
	ins.token(st, tokenString, s[:cut])
	ins.token(st, tokenSentinel, "...[truncated, "+strconv.Itoa(total)+" chars total]")
}

func (ins *Inspector) funcValue(st *state, rv reflect.Value) {
	name := ""
	if fn := runtime.FuncForPC(rv.Pointer()); fn != nil {
		name = fn.Name()
	}
	if name == "" {
		name = "anonymous"
	}
	ins.token(st, tokenPlain, "[Function: "+name+"]")
}

// errorValue renders an error as "<type>: <message>" with the stack
// appended when the value carries one. Error text is exempt from string
// truncation.
func (ins *Inspector) errorValue(st *state, err error) {
	msg := func() (m string) {
		defer func() {
			if r := recover(); r != nil {
				m = fmt.Sprintf("<error value panicked: %v>", r)
			}
		}()
		return err.Error()
	}()

	name := strings.TrimPrefix(fmt.Sprintf("%T", err), "*")
	out := name + ": " + msg
	if tr, ok := err.(StackTracer); ok {
		if stack := tr.StackTrace(); stack != "" {
			out += "\n" + stack
		}
	}
	ins.token(st, tokenPlain, out)
}

func (ins *Inspector) sequence(st *state, rv reflect.Value, depth int) {
	// An empty sequence cannot participate in a cycle, and empty slices
	// all share one runtime address; render before the cycle check.
	n := rv.Len()
	if n == 0 {
		ins.token(st, tokenPunct, "[]")
		return
	}

	// Arrays are values and cannot be self-referential; only slices
	// carry an identity worth tracking.
	if rv.Kind() == reflect.Slice && ins.opts.CircularHandling {
		k := visitKey{rv.Pointer(), reflect.Slice}
		if st.seen(k) {
			ins.token(st, tokenSentinel, circularSentinel)
			return
		}
		st.mark(k)
	}

	ins.token(st, tokenPunct, "[")
	for i := 0; i < n; i++ {
		ins.entrySep(st, i, depth)
		ins.value(st, rv.Index(i), depth+1)
	}
	ins.closeContainer(st, depth, "]")
}

func (ins *Inspector) mapValue(st *state, rv reflect.Value, depth int) {
	// An empty map cannot participate in a cycle; render before the
	// cycle check.
	if rv.Len() == 0 {
		ins.token(st, tokenPunct, "{}")
		return
	}

	if ins.opts.CircularHandling {
		k := visitKey{rv.Pointer(), reflect.Map}
		if st.seen(k) {
			ins.token(st, tokenSentinel, circularSentinel)
			return
		}
		st.mark(k)
	}

	ins.objectBody(st, func() {
		keys := rv.MapKeys()
		// Go maps have no insertion order; sort rendered keys so output
		// is deterministic.
		rendered := make([]struct {
			str string
			val reflect.Value
		}, len(keys))
		for i, k := range keys {
			rendered[i].str = keyString(k)
			rendered[i].val = k
		}
		sort.Slice(rendered, func(i, j int) bool {
			return rendered[i].str < rendered[j].str
		})

		ins.token(st, tokenPunct, "{")
		for i, k := range rendered {
			ins.entrySep(st, i, depth)
			ins.token(st, tokenKey, k.str)
			st.buf.WriteString(": ")
			ins.value(st, rv.MapIndex(k.val), depth+1)
		}
		ins.closeContainer(st, depth, "}")
	})
}

func (ins *Inspector) structValue(st *state, rv reflect.Value, depth int) {
	ins.objectBody(st, func() {
		rt := rv.Type()
		fields := make([]int, 0, rt.NumField())
		for i := 0; i < rt.NumField(); i++ {
			if rt.Field(i).IsExported() {
				fields = append(fields, i)
			}
		}
		if len(fields) == 0 {
			ins.token(st, tokenPunct, "{}")
			return
		}

		ins.token(st, tokenPunct, "{")
		for n, i := range fields {
			ins.entrySep(st, n, depth)
			ins.token(st, tokenKey, rt.Field(i).Name)
			st.buf.WriteString(": ")
			ins.value(st, rv.Field(i), depth+1)
		}
		ins.closeContainer(st, depth, "}")
	})
}

// objectBody runs render with a local recovery: if enumerating the object
// panics, whatever it managed to write is rolled back and the diagnostic
// placeholder renders in its place.
func (ins *Inspector) objectBody(st *state, render func()) {
	mark := st.buf.Len()
	defer func() {
		if r := recover(); r != nil {
			st.buf.Truncate(mark)
			ins.token(st, tokenSentinel, fmt.Sprintf("[Object: failed to stringify - %v]", r))
		}
	}()
	render()
}

// entrySep writes the separator before entry i of a container whose open
// bracket sits at depth. Compact and pretty modes differ only in
// whitespace.
func (ins *Inspector) entrySep(st *state, i, depth int) {
	if ins.opts.PrettyPrint {
		if i > 0 {
			st.buf.WriteByte(',')
		}
		st.buf.WriteByte('\n')
		ins.writeIndent(st, depth+1)
		return
	}
	if i > 0 {
		st.buf.WriteString(", ")
	}
}

func (ins *Inspector) closeContainer(st *state, depth int, bracket string) {
	if ins.opts.PrettyPrint {
		st.buf.WriteByte('\n')
		ins.writeIndent(st, depth)
	}
	ins.token(st, tokenPunct, bracket)
}

func (ins *Inspector) writeIndent(st *state, depth int) {
	for i := 0; i < depth; i++ {
		st.buf.WriteString(ins.indent)
	}
}

func keyString(k reflect.Value) string {
	if k.Kind() == reflect.String {
		return k.String()
	}
	if k.CanInterface() {
		return fmt.Sprint(k.Interface())
	}
	return fmt.Sprintf("%v", k)
}
