package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSerial(t *testing.T) {
	assert.Equal(t, "CL-0001", FormatSerial("CL", 1))
	assert.Equal(t, "DL-0042", FormatSerial("DL", 42))
	assert.Equal(t, "EMP-12345", FormatSerial("EMP", 12345)) // no truncation past four digits
}

func TestParseSerial(t *testing.T) {
	n, err := ParseSerial("CL-0007")
	assert.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = ParseSerial("DL-12345")
	assert.NoError(t, err)
	assert.Equal(t, 12345, n)

	_, err = ParseSerial("nodash")
	assert.Error(t, err)

	_, err = ParseSerial("CL-")
	assert.Error(t, err)

	_, err = ParseSerial("CL-xyz")
	assert.Error(t, err)
}

func TestSerialRoundTrip(t *testing.T) {
	for _, n := range []int{1, 99, 4242} {
		parsed, err := ParseSerial(FormatSerial("DL", n))
		assert.NoError(t, err)
		assert.Equal(t, n, parsed)
	}
}
