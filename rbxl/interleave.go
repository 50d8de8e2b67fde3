package rbxl

import "github.com/robloxfmt/rbxbin"

// deinterleave undoes the column-major byte transpose the format stores
// numeric arrays in: byte j of word i lives at offset i + j*n on disk,
// where n = len(b)/4; this rewrites region to the contiguous little-endian
// layout (byte j of word i at offset 4*i+j).
//
// This uses the same matrix-transpose algorithm as rbxfile's
// rbxl.interleave (rbxl/arrays.go): the on-disk region is a (4 rows x n
// cols) matrix in row-major order (row = byte position, col = word index);
// de-interleaving transposes it into (n rows x 4 cols), which is the
// contiguous little-endian layout. interleaveBytes (used only by tests,
// since this format has no public writer) performs the matching inverse
// transpose, (n rows x 4 cols) -> (4 rows x n cols).
func deinterleave(b []byte) error {
	if len(b)%4 != 0 {
		return rbxbin.BadLengthError{Length: len(b), Divisor: 4}
	}
	return transpose(b, 4, len(b)/4)
}

// interleaveBytes is the inverse of deinterleave: it turns a contiguous
// little-endian array of n 32-bit words back into the on-disk interleaved
// layout. Test-only (see deinterleave's doc comment).
func interleaveBytes(b []byte) error {
	return transpose(b, len(b)/4, 4)
}

// transpose treats b as a rows x cols matrix (row-major) and transposes it
// in place, producing a cols x rows matrix of the same total length.
func transpose(b []byte, rows, cols int) error {
	if cols <= 0 || rows <= 0 {
		if len(b) == 0 {
			return nil
		}
		return rbxbin.BadLengthError{Length: len(b), Divisor: cols}
	}
	if len(b) != rows*cols {
		return rbxbin.BadLengthError{Length: len(b), Divisor: cols}
	}
	if rows == cols {
		for r := 0; r < rows; r++ {
			for c := 0; c < r; c++ {
				b[r*cols+c], b[c*cols+r] = b[c*cols+r], b[r*cols+c]
			}
		}
		return nil
	}
	// Non-square in-place transpose via cycle-following, identical in shape
	// to rbxfile's rbxl.interleave (rbxl/arrays.go) general-case branch.
loop:
	for start := range b {
		next := (start%rows)*cols + start/rows
		if next <= start {
			continue loop
		}
		for {
			next = (next%rows)*cols + next/rows
			if next < start {
				continue loop
			}
			if next == start {
				break
			}
		}
		for next, tmp := start, b[start]; ; {
			i := (next%rows)*cols + next/rows
			if i == start {
				b[next] = tmp
			} else {
				b[next] = b[i]
			}
			if next = i; next <= start {
				break
			}
		}
	}
	return nil
}

// splitColumns carves b (4*n bytes) into k equal column regions of 4*n/k
// bytes each, de-interleaving each independently. Used by multi-field types
// (UDim2, Color3, Vector2, Vector3) whose on-disk layout groups all of field
// 0, then all of field 1, etc., each itself column-interleaved.
func splitColumns(b []byte, k int) ([][]byte, error) {
	if len(b)%k != 0 {
		return nil, rbxbin.BadLengthError{Length: len(b), Divisor: k}
	}
	colLen := len(b) / k
	cols := make([][]byte, k)
	for i := range cols {
		cols[i] = b[i*colLen : (i+1)*colLen]
		if err := deinterleave(cols[i]); err != nil {
			return nil, err
		}
	}
	return cols, nil
}
