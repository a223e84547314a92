package cblog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeOptions(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Options
	}{
		{name: "nil", in: nil, want: Options{}},
		{name: "string", in: "stack", want: Options{}},
		{name: "number", in: 42, want: Options{}},
		{name: "nil pointer", in: (*Options)(nil), want: Options{}},
		{name: "pointer", in: &Options{Stack: true}, want: Options{Stack: true}},
		{name: "value", in: Options{Alert: true, Scope: "s"}, want: Options{Alert: true, Scope: "s"}},
		{name: "map ts false", in: map[string]any{"ts": false}, want: Options{NoTimestamp: true}},
		{name: "map ts string false", in: map[string]any{"ts": "false"}, want: Options{NoTimestamp: true}},
		{name: "map ts true", in: map[string]any{"ts": true}, want: Options{}},
		{name: "map stack", in: map[string]any{"stack": true}, want: Options{Stack: true}},
		{name: "map stack non-bool", in: map[string]any{"stack": "yes"}, want: Options{}},
		{name: "map depth float", in: map[string]any{"depth": float64(2)}, want: Options{Depth: 2}},
		{name: "map scope", in: map[string]any{"scope": 7}, want: Options{Scope: "7"}},
		{
			name: "map extra",
			in:   map[string]any{"alert": true, "channel": "ops"},
			want: Options{Alert: true, Extra: map[string]any{"channel": "ops"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeOptions(tt.in))
		})
	}
}

func TestOptions_Depth(t *testing.T) {
	assert.Equal(t, DefaultDepth, Options{}.depth())
	assert.Equal(t, DefaultDepth, Options{Depth: -1}.depth())
	assert.Equal(t, 2, Options{Depth: 2}.depth())
}
