package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagSet_PreservesOrderAndDropsDuplicates(t *testing.T) {
	var s TagSet
	s.Add("torch")
	s.Add("knife")
	s.Add("torch")
	s.Add("camera")

	assert.Equal(t, []string{"torch", "knife", "camera"}, s.Items())
	assert.Equal(t, 3, s.Len())
}

func TestTagSet_ItemsReturnsACopy(t *testing.T) {
	var s TagSet
	s.Add("torch")

	items := s.Items()
	items[0] = "mutated"

	assert.Equal(t, []string{"torch"}, s.Items())
}

func TestTagSet_ZeroValueIsUsable(t *testing.T) {
	var s TagSet
	assert.Empty(t, s.Items())
	assert.Zero(t, s.Len())
}
