package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPositionals(t *testing.T) {
	tests := []struct {
		name      string
		rest      []string
		wantInput string
		wantCols  []string
		wantErr   bool
	}{
		{"single column", []string{"input.csv", "RAIN"}, "input.csv", []string{"RAIN"}, false},
		{"multiple columns", []string{"input.csv", "RAIN", "WIND"}, "input.csv", []string{"RAIN", "WIND"}, false},
		{"no columns", []string{"input.csv"}, "", nil, true},
		{"no arguments", nil, "", nil, true},
		{"trailing flag", []string{"input.csv", "RAIN", "-cw", "16"}, "", nil, true},
		{"trailing long flag", []string{"input.csv", "RAIN", "--chunk-width"}, "", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, cols, err := splitPositionals(tt.rest)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantInput, input)
			assert.Equal(t, tt.wantCols, cols)
		})
	}
}
