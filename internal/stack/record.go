package stack

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/vtgate-go/vtgate-go-sdk/internal/xstring"
)

// Caller identifies the function that emitted a trace event.
type Caller interface {
	FunctionID() string
}

var (
	_ Caller = functionID("")
	_ Caller = Frame{}
)

type functionID string

func (id functionID) FunctionID() string {
	return string(id)
}

// FunctionID returns a static caller if id is set, otherwise resolves the
// caller from the stack.
func FunctionID(id string) Caller {
	if id != "" {
		return functionID(id)
	}

	return At(1)
}

// Frame is a resolved caller: full function name with closures, base file name and line.
type Frame struct {
	Function string
	File     string
	Line     int
}

// At resolves the caller at given depth, 0 is the caller of At.
func At(depth int) (f Frame) {
	pc, file, line, ok := runtime.Caller(depth + 1)
	if !ok {
		return f
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		f.Function = strings.ReplaceAll(fn.Name(), "[...]", "")
	}
	if i := strings.LastIndexByte(file, '/'); i > -1 {
		file = file[i+1:]
	}
	f.File = file
	f.Line = line

	return f
}

// FunctionID is the function name without trailing closures, e.g.
// `github.com/vtgate-go/vtgate-go-sdk/internal/gateway.(*Client).Execute`
func (f Frame) FunctionID() string {
	name := f.Function
	pkgEnd := strings.LastIndexByte(name, '/') + 1
	for {
		i := strings.LastIndexByte(name[pkgEnd:], '.')
		if i < 0 || !isClosure(name[pkgEnd+i+1:]) {
			return name
		}
		name = name[:pkgEnd+i]
	}
}

// isClosure reports whether name element is a compiler generated closure name
// like func1, gowrap2 or 1 for closure nested in closure
func isClosure(elem string) bool {
	for _, prefix := range []string{"func", "gowrap", ""} {
		if rest, ok := strings.CutPrefix(elem, prefix); ok {
			_, err := strconv.Atoi(rest)

			return err == nil
		}
	}

	return false
}

// String returns `pkg/path.(*struct).func.func1(file.go:line)`
func (f Frame) String() string {
	buffer := xstring.Buffer()
	defer buffer.Free()

	buffer.WriteString(f.Function)
	buffer.WriteByte('(')
	buffer.WriteString(f.File)
	buffer.WriteByte(':')
	buffer.WriteString(strconv.Itoa(f.Line))
	buffer.WriteByte(')')

	return buffer.String()
}

// Record returns string form of the caller at given depth
func Record(depth int) string {
	return At(depth + 1).String()
}
