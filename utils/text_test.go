package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimToNil(t *testing.T) {
	s := func(v string) *string { return &v }

	assert.Nil(t, TrimToNil(nil))
	assert.Nil(t, TrimToNil(s("")))
	assert.Nil(t, TrimToNil(s(" \t\n")))
	assert.Equal(t, "late pickup", *TrimToNil(s("  late pickup ")))
}
