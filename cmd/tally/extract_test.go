package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractCmd(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{name: "symbol and phrase", args: []string{"paid", "$3.79", "ទទួល 1.23 ដុល្លារ"}, contains: []string{"3.79", "1.23", "total: 5.02"}},
		{name: "nothing", args: []string{"hello"}, contains: []string{"no amounts found"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			extractCmd.SetOut(&out)
			require.NoError(t, extractCmd.RunE(extractCmd, tt.args))
			for _, want := range tt.contains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestPrintAmounts_SkipsUnparsable(t *testing.T) {
	var out bytes.Buffer
	total := printAmounts(&out, []string{"3.79", "1.234", "1.23"})

	assert.Equal(t, "5.02", total.StringFixed(2))
	assert.Contains(t, out.String(), "1.234 (skipped: invalid amount)")
	assert.Contains(t, out.String(), "3.79\n")
}
