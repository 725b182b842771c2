package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderOrderCode(t *testing.T) {
	tests := []struct {
		name    string
		counter int64
		want    string
	}{
		{"first value", 0, "PRNTDT-AAA00001"},
		{"second value", 1, "PRNTDT-AAA00002"},
		{"last of first triad", 99998, "PRNTDT-AAA99999"},
		{"rollover to AAB", 99999, "PRNTDT-AAB00001"},
		{"middle of second triad", 100000, "PRNTDT-AAB00002"},
		{"rollover to AAC", 199998, "PRNTDT-AAC00001"},
		{"second letter advance", 99999 * 26, "PRNTDT-ABA00001"},
		{"first letter advance", 99999 * 26 * 26, "PRNTDT-BAA00001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderOrderCode(tt.counter))
		})
	}
}

func TestRenderOrderCodeNeverRepeatsAcrossRollover(t *testing.T) {
	seen := make(map[string]struct{})
	for counter := int64(99990); counter < 100010; counter++ {
		code := RenderOrderCode(counter)
		_, dup := seen[code]
		assert.False(t, dup, "code %s repeated at counter %d", code, counter)
		seen[code] = struct{}{}
	}
}
