package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestDefaults(t *testing.T) {
	var p PageRequest
	assert.Equal(t, 0, p.page())
	assert.Equal(t, defaultSize, p.limit())
	assert.Equal(t, 0, p.offset())
	assert.Equal(t, defaultSort, p.order())
}

func TestPageRequestOffset(t *testing.T) {
	p := PageRequest{Page: 3, Size: 25, Sort: "timestamp desc"}
	assert.Equal(t, 75, p.offset())
	assert.Equal(t, 25, p.limit())
	assert.Equal(t, "timestamp desc", p.order())
}

func TestPageRequestNegativePageClamped(t *testing.T) {
	p := PageRequest{Page: -2, Size: 5}
	assert.Equal(t, 0, p.offset())
}
