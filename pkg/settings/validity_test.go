package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "object", text: `{"a":1}`, want: true},
		{name: "nested", text: "{\n  \"Addresses\": {\"API\": \"/ip4/127.0.0.1/tcp/5001\"}\n}", want: true},
		{name: "array", text: `[1, 2, 3]`, want: true},
		{name: "scalar", text: `42`, want: true},
		{name: "unterminated object", text: `{a:1`, want: false},
		{name: "trailing comma", text: `{"x":1,}`, want: false},
		{name: "empty", text: ``, want: false},
		{name: "partial edit", text: `{"x":`, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValid(tt.text))
		})
	}
}

func TestIsRecent(t *testing.T) {
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	w := PauseAfterSave

	assert.False(t, IsRecent(now.Add(-w), now, w), "window start is exclusive")
	assert.True(t, IsRecent(now.Add(-w+time.Millisecond), now, w))
	assert.True(t, IsRecent(now, now, w))
	assert.False(t, IsRecent(now.Add(-time.Hour), now, w))
	assert.False(t, IsRecent(time.Time{}, now, w), "zero timestamp is never recent")
}
