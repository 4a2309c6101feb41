package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrainChanges(t *testing.T) {
	changes := make(chan string, 2)
	changes <- "shader.vert"
	changes <- "shader.frag"

	changed, open := drainChanges(changes)
	assert.True(t, changed)
	assert.NotNil(t, open)

	changed, open = drainChanges(open)
	assert.False(t, changed)
	assert.NotNil(t, open)
}

func TestDrainChangesClosed(t *testing.T) {
	changes := make(chan string, 1)
	changes <- "shader.frag"
	close(changes)

	changed, open := drainChanges(changes)
	assert.True(t, changed)
	assert.Nil(t, open)

	changed, open = drainChanges(open)
	assert.False(t, changed, "a nil channel never reports")
	assert.Nil(t, open)
}

func TestDrainChangesWithoutWatcher(t *testing.T) {
	changed, open := drainChanges(nil)
	assert.False(t, changed)
	assert.Nil(t, open)
}
