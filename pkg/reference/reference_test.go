package reference

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		ref := New()
		assert.True(t, Valid(ref), ref)
		seen[ref] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Already clean", input: "PUPU-7992739875", expected: "PUPU-7992739875"},
		{name: "Lower case with spaces", input: " pupu- 79927 39875 ", expected: "PUPU-7992739875"},
		{name: "Missing dash", input: "pupu7992739875", expected: "PUPU-7992739875"},
		{name: "Foreign label", input: "rent march", expected: "RENTMARCH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "Valid check digit", input: "PUPU-7992739875", expected: true},
		{name: "Typo in digits", input: "PUPU-7992739874", expected: false},
		{name: "Too short", input: "PUPU-18", expected: false},
		{name: "No prefix", input: "7992739875", expected: false},
		{name: "Letters", input: "PUPU-79927398AB", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Valid(tt.input))
		})
	}
}
