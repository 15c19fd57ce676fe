package kv

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/vtgate-go/vtgate-go-sdk/internal/version"
)

type FieldType int

const (
	InvalidType FieldType = iota
	IntType
	Int64Type
	StringType
	BoolType
	DurationType
	StringsType
	ErrorType
	AnyType
	StringerType
	endType
)

var fieldTypeNames = [...]string{
	InvalidType:  "invalid",
	IntType:      "int",
	Int64Type:    "int64",
	StringType:   "string",
	BoolType:     "bool",
	DurationType: "time.Duration",
	StringsType:  "[]string",
	ErrorType:    "error",
	AnyType:      "any",
	StringerType: "stringer",
}

func (ft FieldType) String() string {
	if ft <= InvalidType || ft >= endType {
		return fieldTypeNames[InvalidType]
	}

	return fieldTypeNames[ft]
}

// KeyValue is a typed key-value pair for structural logging.
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

func (f KeyValue) Type() FieldType {
	return f.ftype
}

func (f KeyValue) Key() string {
	return f.key
}

func (f KeyValue) StringValue() string {
	return f.vstr
}

func (f KeyValue) IntValue() int {
	return int(f.vint)
}

func (f KeyValue) Int64Value() int64 {
	return f.vint
}

func (f KeyValue) BoolValue() bool {
	return f.vint != 0
}

func (f KeyValue) DurationValue() time.Duration {
	return time.Duration(f.vint)
}

func (f KeyValue) StringsValue() []string {
	if f.vany == nil {
		return nil
	}
	val, _ := f.vany.([]string)

	return val
}

func (f KeyValue) ErrorValue() error {
	if f.vany == nil {
		return nil
	}
	val, _ := f.vany.(error)

	return val
}

func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case IntType:
		return f.IntValue()
	case Int64Type:
		return f.Int64Value()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	case StringsType:
		return f.StringsValue()
	case ErrorType:
		return f.ErrorValue()
	case AnyType, StringerType:
		return f.vany
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

// String formats the value of field.
// Panics on fields of unknown type.
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case StringsType:
		return fmt.Sprintf("%v", f.StringsValue())
	case ErrorType:
		if f.vany == nil {
			return "<nil>"
		}

		return f.ErrorValue().Error()
	case AnyType:
		return anyToString(f.vany)
	case StringerType:
		if s, ok := f.vany.(fmt.Stringer); ok && s != nil {
			return s.String()
		}

		return "<nil>"
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

func anyToString(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return fmt.Sprint(v)
	}
	if rv.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf("%T(%v)", v, rv.Elem().Interface())
}

func Int(k string, v int) KeyValue {
	return KeyValue{ftype: IntType, key: k, vint: int64(v)}
}

func Int64(k string, v int64) KeyValue {
	return KeyValue{ftype: Int64Type, key: k, vint: v}
}

func String(k, v string) KeyValue {
	return KeyValue{ftype: StringType, key: k, vstr: v}
}

func Bool(k string, v bool) KeyValue {
	var vint int64
	if v {
		vint = 1
	}

	return KeyValue{ftype: BoolType, key: k, vint: vint}
}

func Duration(k string, v time.Duration) KeyValue {
	return KeyValue{ftype: DurationType, key: k, vint: v.Nanoseconds()}
}

func Strings(k string, v []string) KeyValue {
	return KeyValue{ftype: StringsType, key: k, vany: v}
}

func NamedError(k string, v error) KeyValue {
	return KeyValue{ftype: ErrorType, key: k, vany: v}
}

func Error(v error) KeyValue {
	return NamedError("error", v)
}

func Any(k string, v interface{}) KeyValue {
	return KeyValue{ftype: AnyType, key: k, vany: v}
}

func Stringer(k string, v fmt.Stringer) KeyValue {
	return KeyValue{ftype: StringerType, key: k, vany: v}
}

func Latency(start time.Time) KeyValue {
	return Duration("latency", time.Since(start))
}

func Version() KeyValue {
	return String("version", version.Version)
}
