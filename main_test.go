package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMainFunctionExists(t *testing.T) {
	t.Run("should have main function", func(t *testing.T) {
		// main exits the process, command behavior is tested in the cmd package
		assert.NotNil(t, main)
	})
}
