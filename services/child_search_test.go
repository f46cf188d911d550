package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"yultimate/models"
)

func names(children []models.Child) []string {
	out := make([]string, 0, len(children))
	for _, c := range children {
		out = append(out, c.FirstName+" "+c.LastName)
	}
	return out
}

func TestSearchChildren(t *testing.T) {
	children := []models.Child{
		{ID: 1, FirstName: "Aarav", LastName: "Sharma"},
		{ID: 2, FirstName: "José", LastName: "Núñez"},
		{ID: 3, FirstName: "Priya", LastName: "Patel"},
		{ID: 4, FirstName: "Rohan", LastName: "Sharma"},
	}

	t.Run("substring", func(t *testing.T) {
		assert.ElementsMatch(t, []string{"Aarav Sharma", "Rohan Sharma"}, names(SearchChildren("sharma", children)))
	})

	t.Run("transliterated", func(t *testing.T) {
		assert.Equal(t, []string{"José Núñez"}, names(SearchChildren("jose nunez", children)))
	})

	t.Run("typo", func(t *testing.T) {
		got := names(SearchChildren("Pattel", children))
		assert.Equal(t, []string{"Priya Patel"}, got)
	})

	t.Run("full name ranks first", func(t *testing.T) {
		got := names(SearchChildren("rohan sharma", children))
		assert.Equal(t, "Rohan Sharma", got[0])
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, SearchChildren("zzzz", children))
	})

	t.Run("blank query returns all", func(t *testing.T) {
		assert.Len(t, SearchChildren("  ", children), 4)
	})
}
