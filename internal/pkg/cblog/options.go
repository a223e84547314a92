package cblog

import "fmt"

// DefaultDepth - глубина инспекции вложенных структур по умолчанию.
const DefaultDepth = 4

// Options управляет видом записи и алертингом.
// Нулевое значение соответствует поведению по умолчанию.
type Options struct {
	// NoTimestamp убирает сегмент со временем (ключ "ts": false).
	NoTimestamp bool

	// Stack добавляет стек вызова в конец записи.
	Stack bool

	// Alert запрашивает отправку алерта через подключённый Alerter.
	Alert bool

	// Scope передаётся алертеру без изменений.
	Scope string

	// Depth - глубина инспекции данных. 0 означает DefaultDepth.
	Depth int

	// Extra содержит нераспознанные ключи map-опций, передаётся алертеру как есть.
	Extra map[string]any
}

func (o Options) depth() int {
	if o.Depth <= 0 {
		return DefaultDepth
	}
	return o.Depth
}

// normalizeOptions приводит значение из слота опций к Options.
// Всё, что не является Options, *Options или map[string]any, даёт пустые опции.
func normalizeOptions(v any) Options {
	switch o := v.(type) {
	case Options:
		return o
	case *Options:
		if o == nil {
			return Options{}
		}
		return *o
	case map[string]any:
		return optionsFromMap(o)
	default:
		return Options{}
	}
}

func optionsFromMap(m map[string]any) Options {
	var opts Options
	for k, v := range m {
		switch k {
		case "ts":
			// Время отключается только явным false или строкой "false".
			switch t := v.(type) {
			case bool:
				opts.NoTimestamp = !t
			case string:
				opts.NoTimestamp = t == "false"
			}
		case "stack":
			opts.Stack = v == true
		case "alert":
			opts.Alert = v == true
		case "scope":
			if v != nil {
				opts.Scope = fmt.Sprint(v)
			}
		case "depth":
			opts.Depth = toInt(v)
		default:
			if opts.Extra == nil {
				opts.Extra = make(map[string]any)
			}
			opts.Extra[k] = v
		}
	}
	return opts
}

func toInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
