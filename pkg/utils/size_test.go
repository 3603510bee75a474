package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    int64
		expectError bool
	}{
		{name: "should parse bare number as bytes", input: "4096", expected: 4096},
		{name: "should parse bytes", input: "500B", expected: 500},
		{name: "should parse bytes with space", input: "500 B", expected: 500},
		{name: "should parse kilobytes", input: "64KB", expected: 65536},
		{name: "should parse kibibytes", input: "64KiB", expected: 65536},
		{name: "should parse megabytes", input: "1MB", expected: 1048576},
		{name: "should parse gigabytes", input: "1GB", expected: 1073741824},
		{name: "should parse decimal values", input: "1.5MB", expected: 1572864},
		{name: "should handle lowercase units", input: "1kb", expected: 1024},
		{name: "should trim surrounding space", input: "  2 KB ", expected: 2048},
		{name: "should error on invalid format", input: "invalid", expectError: true},
		{name: "should error on unsupported unit", input: "1TB", expectError: true},
		{name: "should error on empty string", input: "", expectError: true},
		{name: "should error on negative values", input: "-1MB", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSize(tt.input)

			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    int64
		expected string
	}{
		{name: "should handle zero bytes", bytes: 0, expected: "0 B"},
		{name: "should format bytes", bytes: 500, expected: "500 B"},
		{name: "should format kilobytes", bytes: 1536, expected: "1.5 KB"},
		{name: "should format default chunk", bytes: 65536, expected: "64.0 KB"},
		{name: "should format megabytes", bytes: 1572864, expected: "1.5 MB"},
		{name: "should format gigabytes", bytes: 1610612736, expected: "1.5 GB"},
		{name: "should format terabytes", bytes: 1 << 40, expected: "1.0 TB"},
		{name: "should cap at terabytes", bytes: 1 << 50, expected: "1024.0 TB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBytes(tt.bytes))
		})
	}
}
