package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	g, _, err := loadGrammar(writeFile(t, "cnf.txt", cnfText), 'S')
	require.NoError(t, err)

	s := session{grammar: g}
	assert.Equal(t, []string{menuCYK, menuExit}, s.items())

	ok, err := s.evaluate(menuCYK, "ab")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.evaluate(menuCYK, "-")
	require.NoError(t, err)
	assert.False(t, ok)

	p, _, err := loadPushdown(writeFile(t, "pda.txt", pdaText))
	require.NoError(t, err)
	s.pda = p
	assert.Equal(t, []string{menuCYK, menuPushdown, menuExit}, s.items())

	ok, err = s.evaluate(menuPushdown, "()")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = s.evaluate("bogus", "ab")
	assert.Error(t, err)
}
