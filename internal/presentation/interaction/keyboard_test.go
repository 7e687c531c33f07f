package interaction

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    byte
		expected Decision
		ok       bool
		err      error
	}{
		{
			name:     "enter (LF) exports",
			input:    10,
			expected: DecisionExport,
			ok:       true,
		},
		{
			name:     "enter (CR) exports",
			input:    13,
			expected: DecisionExport,
			ok:       true,
		},
		{
			name:     "escape skips",
			input:    27,
			expected: DecisionSkip,
			ok:       true,
		},
		{
			name:  "ctrl-c interrupts",
			input: 3,
			ok:    true,
			err:   ErrInterrupted,
		},
		{
			name:  "regular char is discarded",
			input: 'a',
			ok:    false,
		},
		{
			name:  "space is discarded",
			input: ' ',
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision, ok, err := decodeKey(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			if tt.ok {
				assert.Equal(t, tt.expected, decision)
			}
		})
	}
}

func TestScriptedReader(t *testing.T) {
	sr := NewScriptedReader(DecisionExport, DecisionSkip)

	d, err := sr.ReadDecision()
	assert.NoError(t, err)
	assert.Equal(t, DecisionExport, d)

	d, err = sr.ReadDecision()
	assert.NoError(t, err)
	assert.Equal(t, DecisionSkip, d)

	_, err = sr.ReadDecision()
	assert.ErrorIs(t, err, io.EOF)
}
