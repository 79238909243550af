package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryType_Valid(t *testing.T) {
	for _, ct := range CategoryTypes {
		assert.True(t, ct.Valid(), ct)
	}
	assert.False(t, CategoryType("errands").Valid())
	assert.False(t, CategoryType("").Valid())
}
