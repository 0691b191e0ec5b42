package qm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdbarlow/qmin/internal/qm"
)

func TestTri_Valid(t *testing.T) {
	assert.True(t, qm.Zero.Valid())
	assert.True(t, qm.One.Valid())
	assert.True(t, qm.DontCare.Valid())
	assert.False(t, qm.Tri(7).Valid())
}

func TestTri_String(t *testing.T) {
	assert.Equal(t, "0", qm.Zero.String())
	assert.Equal(t, "1", qm.One.String())
	assert.Equal(t, "-", qm.DontCare.String())
}

func TestTriFromBool(t *testing.T) {
	assert.Equal(t, qm.One, qm.TriFromBool(true))
	assert.Equal(t, qm.Zero, qm.TriFromBool(false))
}

func TestParseTri_Synonyms(t *testing.T) {
	cases := []struct {
		in   any
		want qm.Tri
	}{
		{qm.Zero, qm.Zero},
		{true, qm.One},
		{false, qm.Zero},
		{0, qm.Zero},
		{1, qm.One},
		{-1, qm.DontCare},
		{"0", qm.Zero},
		{"1", qm.One},
		{"-", qm.DontCare},
		{"x", qm.DontCare},
		{"dc", qm.DontCare},
		{"true", qm.One},
		{"false", qm.Zero},
	}
	for _, c := range cases {
		got, err := qm.ParseTri(c.in)
		assert.NoError(t, err, "input %v", c.in)
		assert.Equal(t, c.want, got, "input %v", c.in)
	}
}

func TestParseTri_Rejects(t *testing.T) {
	for _, bad := range []any{"maybe", 7, 3.5, []int{1}} {
		_, err := qm.ParseTri(bad)
		assert.Error(t, err, "input %v", bad)
	}
}
