package fortune2d

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_Accessors(t *testing.T) {
	p := NewPoint(3, 4)
	assert.Equal(t, 3.0, p.X())
	assert.Equal(t, 4.0, p.Y())
	assert.Equal(t, "(3, 4)", p.String())
}

func TestPoint_Eq(t *testing.T) {
	assert.True(t, NewPoint(1, 2).Eq(NewPoint(1, 2)))
	assert.False(t, NewPoint(1, 2).Eq(NewPoint(1, 2.0000001)))
}

func TestPoint_Distance(t *testing.T) {
	p := NewPoint(0, 0)
	q := NewPoint(3, 4)
	assert.Equal(t, 25.0, p.DistanceSquaredToPoint(q))
	assert.Equal(t, 5.0, p.DistanceToPoint(q))
}

func TestPoint_MarshalUnmarshalJSON(t *testing.T) {
	p := NewPoint(1.5, -2.5)
	b, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"x":1.5,"y":-2.5}`, string(b))

	var out Point
	require.NoError(t, json.Unmarshal(b, &out))
	assert.True(t, p.Eq(out))
}

func TestVector2D_Arithmetic(t *testing.T) {
	v := NewVector2D(1, 2)
	w := NewVector2D(3, 4)

	assert.Equal(t, NewVector2D(4, 6), v.Add(w))
	assert.Equal(t, NewVector2D(-2, -2), v.Sub(w))
	assert.Equal(t, NewVector2D(2, 4), v.Scale(2))
	assert.InDelta(t, math.Sqrt(5), v.Magnitude(), 1e-12)
}

func TestVector2D_Normal(t *testing.T) {
	v := NewVector2D(1, 0)
	n := v.Normal()
	assert.Equal(t, NewVector2D(0, 1), n)
}

func TestVectorTo(t *testing.T) {
	p := NewPoint(1, 1)
	q := NewPoint(4, 5)
	v := VectorTo(p, q)
	assert.Equal(t, NewVector2D(3, 4), v)
	assert.Equal(t, q, p.Translate(v))
}

func TestPoint_Translate(t *testing.T) {
	p := NewPoint(1, 1)
	moved := p.Translate(NewVector2D(2, -3))
	assert.Equal(t, NewPoint(3, -2), moved)
}
