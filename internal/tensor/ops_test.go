package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinaryOps(t *testing.T) {
	a := MustNew([][]float64{{6, 8}, {10, 12}})
	b := MustNew([][]float64{{2, 4}, {5, 3}})

	tests := []struct {
		name string
		op   func(*Tensor, Operand, Mode) (*Tensor, error)
		want [][]float64
	}{
		{"Add", (*Tensor).Add, [][]float64{{8, 12}, {15, 15}}},
		{"Subtract", (*Tensor).Subtract, [][]float64{{4, 4}, {5, 9}}},
		{"Multiply", (*Tensor).Multiply, [][]float64{{12, 32}, {50, 36}}},
		{"Divide", (*Tensor).Divide, [][]float64{{3, 2}, {2, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.op(a, Of(b), Copy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Values())
			assert.Equal(t, [][]float64{{6, 8}, {10, 12}}, a.Values(), "Copy mode must not mutate")

			c := a.Clone()
			same, err := tt.op(c, Of(b), InPlace)
			require.NoError(t, err)
			assert.Same(t, c, same)
			assert.Equal(t, tt.want, c.Values())
		})
	}
}

func TestBinaryOps_Scalar(t *testing.T) {
	a := MustNew([][]float64{{1, 2}})

	out, err := a.Multiply(Scalar(3), Copy)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{3, 6}}, out.Values())

	out, err = a.Subtract(Scalar(1), Copy)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 1}}, out.Values())
}

func TestBinaryOps_AbsentOperand(t *testing.T) {
	a := MustNew([][]float64{{1, 2}})

	out, err := a.Divide(None(), Copy)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}}, out.Values())
}

func TestAdd_Broadcast(t *testing.T) {
	a := MustNew([][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	b := MustNew([][]float64{{10, 20, 30}})

	out, err := a.Add(Of(b), Copy)
	require.NoError(t, err)

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			assert.Equal(t, a.At(i, j)+b.At(0, j), out.At(i, j))
		}
	}
}

func TestBinaryOps_ShapeMismatch(t *testing.T) {
	a := Ones(2, 3)

	_, err := a.Add(Of(Ones(2, 2)), InPlace)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = a.Multiply(Of(Ones(3, 3)), Copy)
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Equal(t, 6.0, a.Sum())
}

func TestUnaryOps(t *testing.T) {
	a := MustNew([][]float64{{-1.5, -0.5, 0.5, 2.4}})

	assert.Equal(t, [][]float64{{-1, 0, 1, 2}}, a.Round(Copy).Values())
	assert.Equal(t, [][]float64{{1.5, 0.5, 0.5, 2.4}}, a.Abs(Copy).Values())
	assert.InDeltaSlice(t, []float64{2.25, 0.25, 0.25, 5.76}, a.Square(Copy).Row(0), tol)
	assert.Equal(t, [][]float64{{-3, -1, 1, 4.8}}, a.Scale(2, Copy).Values())
	assert.Equal(t, [][]float64{{-1.5, -0.5, 0.5, 2.4}}, a.Values(), "Copy mode must not mutate")

	same := a.Square(InPlace)
	assert.Same(t, a, same)
	assert.InDelta(t, 2.25, a.At(0, 0), tol)
}

func TestMap(t *testing.T) {
	a := MustNew([][]float64{{1, 2}})
	out := a.Map(func(v float64) float64 { return v * 10 }, Copy)

	assert.Equal(t, [][]float64{{10, 20}}, out.Values())
	assert.Equal(t, [][]float64{{1, 2}}, a.Values())

	a.Map(func(v float64) float64 { return -v }, InPlace)
	assert.Equal(t, [][]float64{{-1, -2}}, a.Values())
}
