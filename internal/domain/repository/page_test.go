package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Normalize(t *testing.T) {
	assert.Equal(t, Page{Limit: DefaultPageLimit, Order: SortDesc}, Page{}.Normalize())
	assert.Equal(t, Page{Limit: MaxPageLimit, Offset: 0, Order: SortDesc}, Page{Limit: 10_000, Offset: -3}.Normalize())
	assert.Equal(t, Page{Limit: 10, Offset: 20, Order: SortAsc}, Page{Limit: 10, Offset: 20, Order: SortAsc}.Normalize())
	assert.Equal(t, SortDesc, Page{Order: "sideways"}.Normalize().Order)
}

func TestPageFromNumber(t *testing.T) {
	assert.Equal(t, Page{Limit: 10, Offset: 10, Order: SortDesc}, PageFromNumber(2, 10))
	assert.Equal(t, Page{Limit: 10, Offset: 0, Order: SortDesc}, PageFromNumber(0, 10))
	assert.Equal(t, Page{Limit: DefaultPageLimit, Offset: 2 * DefaultPageLimit, Order: SortDesc}, PageFromNumber(3, 0))
}
