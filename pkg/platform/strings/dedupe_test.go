package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "empty", raw: "", want: nil},
		{name: "only separators", raw: " , ,", want: nil},
		{name: "trims", raw: " a:9092 ,b:9092", want: []string{"a:9092", "b:9092"}},
		{name: "drops repeats keeping first order", raw: "b,a,b,a", want: []string{"b", "a"}},
		{name: "case sensitive", raw: "A,a", want: []string{"A", "a"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.raw, ","))
		})
	}
}
