package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAny(t *testing.T) {
	errA := New("a")
	errB := New("b")
	wrapped := Wrap(errB, "context")

	assert.True(t, IsAny(wrapped, errA, errB))
	assert.False(t, IsAny(wrapped, errA))
	assert.False(t, IsAny(nil, errA))
}

func TestRootMessage(t *testing.T) {
	root := New("connection refused")
	err := Wrapf(Wrap(root, "failed to ping"), "connect %s", "mysql")

	assert.Equal(t, "connection refused", RootMessage(err))
	assert.Equal(t, "", RootMessage(nil))
}
