package cblog

import (
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// TimestampLayout - формат времени в сегменте "at ...".
const TimestampLayout = "2006-01-02 15:04:05.000"

// Record содержит всё, из чего строится строка лога.
type Record struct {
	Level    Level
	Key      string
	Data     any
	Options  Options
	Err      ErrValue
	CallSite CallSite
	Time     time.Time
}

// Format строит упорядоченные сегменты записи. Пустые сегменты не возвращаются.
// Результат зависит только от rec.
func Format(rec Record) []string {
	depth := rec.Options.depth()

	segments := []string{
		rec.Level.String() + ": ** " + rec.Key,
	}
	if isPresent(rec.Data) {
		segments = append(segments, "\n"+Inspect(rec.Data, depth))
	}
	switch rec.Err.Kind {
	case ErrString:
		segments = append(segments, "\n** "+rec.Err.Text)
	case ErrStructured:
		segments = append(segments, "\n** "+Inspect(rec.Err.Value, depth))
	}
	segments = append(segments, "\n-> "+rec.CallSite.Source)
	if !rec.Options.NoTimestamp {
		segments = append(segments, formatTimestamp(rec.Time))
	}
	if rec.Options.Stack && rec.CallSite.Stack != "" {
		segments = append(segments, "\n   "+rec.CallSite.Stack)
	}

	out := segments[:0]
	for _, s := range segments {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Line склеивает сегменты в одну строку через пробел.
func Line(segments []string) string {
	return strings.Join(segments, " ")
}

// Inspect возвращает детерминированное представление значения.
// Вложенность глубже depth обрезается.
func Inspect(v any, depth int) string {
	cfg := spew.ConfigState{
		Indent:                  "  ",
		MaxDepth:                depth,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
		SortKeys:                true,
	}
	return strings.TrimSuffix(cfg.Sdump(v), "\n")
}

func formatTimestamp(ts time.Time) string {
	ts = ts.UTC()
	return "at " + ts.Format(TimestampLayout) + " (" + strconv.FormatInt(ts.UnixMilli(), 10) + ")"
}
