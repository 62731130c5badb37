// File: cmd/axi/main_test.go
package main

import (
	"errors"
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetMocks restores the original function implementations.
func resetMocks() {
	osWriteFile = os.WriteFile
	osExit = os.Exit
}

func panicking(msg string) {
	defer handlePanic()
	panic(msg)
}

func TestHandlePanic(t *testing.T) {
	t.Cleanup(resetMocks)

	t.Run("writes the panic log and exits 2", func(t *testing.T) {
		var (
			written  string
			filename string
			code     = -1
		)
		osWriteFile = func(name string, data []byte, _ fs.FileMode) error {
			filename = name
			written = string(data)
			return nil
		}
		osExit = func(c int) { code = c }

		panicking("boom")

		assert.Equal(t, panicLogFile, filename)
		assert.Contains(t, written, "panic: boom")
		assert.Contains(t, written, "goroutine", "the stack trace is recorded")
		assert.Equal(t, 2, code)
	})

	t.Run("still exits when the log cannot be written", func(t *testing.T) {
		code := -1
		osWriteFile = func(string, []byte, fs.FileMode) error { return errors.New("read-only") }
		osExit = func(c int) { code = c }

		panicking("boom")
		assert.Equal(t, 2, code)
	})

	t.Run("does nothing without a panic", func(t *testing.T) {
		called := false
		osExit = func(int) { called = true }
		func() {
			defer handlePanic()
		}()
		require.False(t, called)
	})
}
