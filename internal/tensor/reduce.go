package tensor

import "gonum.org/v1/gonum/floats"

// Sum returns the sum of all elements.
func (t *Tensor) Sum() float64 {
	total := 0.0
	for _, row := range t.data {
		total += floats.Sum(row)
	}
	return total
}

// Mean returns the mean of all elements.
func (t *Tensor) Mean() float64 {
	return t.Sum() / float64(t.Shape().NumElements())
}

// SumRows collapses every row to its sum.
// The result is a single row with one entry per row of t: shape [1, rows].
func (t *Tensor) SumRows() *Tensor {
	out := alloc(1, t.Rows())
	for i, row := range t.data {
		out.data[0][i] = floats.Sum(row)
	}
	return out
}

// MeanRows collapses every row to its mean over the row width.
// The result is a single row with one entry per row of t: shape [1, rows].
//
// Note that this averages across the columns of each row, not across rows.
func (t *Tensor) MeanRows() *Tensor {
	out := t.SumRows()
	floats.Scale(1/float64(t.Cols()), out.data[0])
	return out
}

// SumColumns collapses every column to its sum.
// The result is a single column with one entry per column of t: shape [cols, 1].
func (t *Tensor) SumColumns() *Tensor {
	out := alloc(t.Cols(), 1)
	for _, row := range t.data {
		for j, v := range row {
			out.data[j][0] += v
		}
	}
	return out
}

// MeanColumns collapses every column to its mean over the row count.
// The result has shape [cols, 1].
func (t *Tensor) MeanColumns() *Tensor {
	out := t.SumColumns()
	n := float64(t.Rows())
	for _, row := range out.data {
		row[0] /= n
	}
	return out
}
