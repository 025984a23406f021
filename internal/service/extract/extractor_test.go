package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "no numbers",
			text: "no numbers here",
			want: nil,
		},
		{
			name: "plain number without marker",
			text: "paid 20 today",
			want: nil,
		},
		{
			name: "symbol integer",
			text: "$20",
			want: []string{"20"},
		},
		{
			name: "symbol with space and cents",
			text: "total $ 3.79 thanks",
			want: []string{"3.79"},
		},
		{
			name: "symbol keeps left to right order",
			text: "$1 then $2.5 then $3.25",
			want: []string{"1", "2.5", "3.25"},
		},
		{
			name: "symbol truncates to two fraction digits",
			text: "$1.234",
			want: []string{"1.23"},
		},
		{
			name: "phrase long form",
			text: "ទទួលប្រាក់ចំនួន 1.23 ដុល្លារ",
			want: []string{"1.23"},
		},
		{
			name: "phrase short form",
			text: "បានទទួល 28.80 ដុល្លារ ពី ABA",
			want: []string{"28.80"},
		},
		{
			name: "phrase without currency word",
			text: "បានទទួល 28.80",
			want: nil,
		},
		{
			name: "symbol before phrase regardless of position",
			text: "បានទទួល 5 ដុល្លារ និង $7.10",
			want: []string{"7.10", "5"},
		},
		{
			name: "both families",
			text: "$2 ទទួលប្រាក់ចំនួន 3.50 ដុល្លារ $4 បានទទួល 6 ដុល្លារ",
			want: []string{"2", "4", "3.50", "6"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}
