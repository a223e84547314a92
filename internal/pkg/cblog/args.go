package cblog

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrKind различает варианты значения ошибки в записи.
type ErrKind int

const (
	// ErrAbsent - ошибка не передана.
	ErrAbsent ErrKind = iota
	// ErrString - строка, выводится как есть.
	ErrString
	// ErrStructured - error или другое значение, выводится через инспекцию.
	ErrStructured
)

// ErrValue - значение из слота ошибки после нормализации аргументов.
type ErrValue struct {
	Kind  ErrKind
	Text  string
	Value any
}

// Present сообщает, передана ли ошибка.
func (e ErrValue) Present() bool {
	return e.Kind != ErrAbsent
}

// AsError возвращает значение в виде error. Для отсутствующей ошибки - nil.
func (e ErrValue) AsError() error {
	switch e.Kind {
	case ErrString:
		return errors.New(e.Text)
	case ErrStructured:
		if err, ok := e.Value.(error); ok {
			return err
		}
		return fmt.Errorf("%v", e.Value)
	default:
		return nil
	}
}

// errValueOf классифицирует значение слота ошибки.
func errValueOf(v any) ErrValue {
	if isNil(v) {
		return ErrValue{}
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return ErrValue{}
		}
		return ErrValue{Kind: ErrString, Text: s}
	}
	return ErrValue{Kind: ErrStructured, Value: v}
}

// normalizeArgs раскладывает позиционные аргументы data, options, err.
// Если слот ошибки пуст, error из слота data (затем options) переносится в него.
func normalizeArgs(args []any) (data any, opts Options, errv ErrValue) {
	var rawOpts, rawErr any
	if len(args) > 0 {
		data = args[0]
	}
	if len(args) > 1 {
		rawOpts = args[1]
	}
	if len(args) > 2 {
		rawErr = args[2]
	}

	errv = errValueOf(rawErr)
	if !errv.Present() {
		switch {
		case isError(data):
			errv = ErrValue{Kind: ErrStructured, Value: data}
			data = nil
		case isError(rawOpts):
			errv = ErrValue{Kind: ErrStructured, Value: rawOpts}
			rawOpts = nil
		}
	}

	return data, normalizeOptions(rawOpts), errv
}

func isError(v any) bool {
	if _, ok := v.(error); !ok {
		return false
	}
	return !isNil(v)
}

// isNil ловит и untyped nil, и nil внутри интерфейса.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// isPresent повторяет проверку "данные есть": nil и нулевые скаляры считаются пустыми.
func isPresent(v any) bool {
	if isNil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return !rv.IsZero()
	default:
		return true
	}
}

// injectRequestID добавляет идентификатор запроса в данные.
// Пустые данные заменяются на map, map[string]any копируется с новым полем,
// остальные значения не меняются.
func injectRequestID(data any, id string) any {
	if !isPresent(data) {
		return map[string]any{RequestIDField: id}
	}
	m, ok := data.(map[string]any)
	if !ok {
		return data
	}
	out := make(map[string]any, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	out[RequestIDField] = id
	return out
}
