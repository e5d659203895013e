package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordID(t *testing.T) {
	assert.Equal(t, "", Record{}.ID())
	assert.Equal(t, "", Record{"id": nil}.ID())
	assert.Equal(t, "abc", Record{"id": "abc"}.ID())
	assert.Equal(t, "42", Record{"id": int64(42)}.ID())
}

func TestMenuItemVisibleTo(t *testing.T) {
	m := &MenuItem{VisibleToRoles: []string{"admin"}}
	assert.True(t, m.VisibleTo("admin"))
	assert.False(t, m.VisibleTo("user"))
}
