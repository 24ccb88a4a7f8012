// tensor.go --  This file is part of goSymm project.
//
//	goSymm is distributed in the hope that it will be useful,
//	but WITHOUT ANY WARRANTY; without even the implied warranty
//	of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
//	See the GNU General Public License for more details.
//
//	You should have received a copy of the GNU General Public License
//	along with this program.  If not, see http://www.gnu.org/licenses/
//
// ------------------------------------------------

package symmetrizer

import "fmt"

// Basis describes the trailing-axis layout of one species' coefficient
// tensor: L angular momentum channels and N radial channels. L counts
// channels, it is not the maximum angular momentum; with s-orbitals only,
// L is 1 and l ranges over [0, L).
type Basis struct {
	L int // number of angular momentum channels
	N int // number of radial channels
}

// Size returns the flattened basis length sum over n in [0,N) and
// l in [0,L) of (2l+1), i.e. N*L*L.
func (b Basis) Size() int {
	size := 0
	for l := 0; l < b.L; l++ {
		size += 2*l + 1
	}
	return b.N * size
}

// Coeffs is a complex coefficient tensor. The trailing axis of Shape is the
// flattened (n, l, m) basis axis; any leading axes are sample/batch axes
// and are carried through the reductions unchanged. Data is laid out
// row-major over Shape.
type Coeffs struct {
	Shape []int
	Data  []complex128
}

// Features is a real invariant tensor produced by a reduction. Its leading
// axes equal those of the input Coeffs; the trailing axis holds the
// invariants.
type Features struct {
	Shape []int
	Data  []float64
}

// NewCoeffs wraps data in a Coeffs after checking that the shape is
// non-empty and consistent with the data length.
func NewCoeffs(shape []int, data []complex128) (*Coeffs, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("symmetrizer: empty shape: %w", ErrBadShape)
	}
	want := 1
	for _, d := range shape {
		want *= d
	}
	if want != len(data) {
		return nil, fmt.Errorf("symmetrizer: shape %v needs %d elements, got %d: %w",
			shape, want, len(data), ErrBadShape)
	}
	return &Coeffs{Shape: shape, Data: data}, nil
}

// NewCoeffsReal is NewCoeffs for purely real input.
func NewCoeffsReal(shape []int, data []float64) (*Coeffs, error) {
	cdata := make([]complex128, len(data))
	for i, v := range data {
		cdata[i] = complex(v, 0)
	}
	return NewCoeffs(shape, cdata)
}

// trailing returns the length of the basis axis.
func (c *Coeffs) trailing() int {
	return c.Shape[len(c.Shape)-1]
}

// samples returns the product of the leading axes, 1 for a bare 1D tensor.
func (c *Coeffs) samples() int {
	rows := 1
	for _, d := range c.Shape[:len(c.Shape)-1] {
		rows *= d
	}
	return rows
}

// checkShape validates c against b before a reduction touches any element.
func checkShape(c *Coeffs, b Basis) error {
	if b.L < 1 || b.N < 1 {
		return fmt.Errorf("symmetrizer: basis needs L >= 1 and N >= 1, got (%d,%d): %w",
			b.L, b.N, ErrBadConfig)
	}
	if c == nil || len(c.Shape) == 0 {
		return fmt.Errorf("symmetrizer: nil or shapeless coefficients: %w", ErrBadShape)
	}
	if c.trailing() != b.Size() {
		return fmt.Errorf("symmetrizer: trailing dimension %d, basis (L=%d, N=%d) needs %d: %w",
			c.trailing(), b.L, b.N, b.Size(), ErrBadShape)
	}
	if c.samples()*c.trailing() != len(c.Data) {
		return fmt.Errorf("symmetrizer: shape %v inconsistent with %d data elements: %w",
			c.Shape, len(c.Data), ErrBadShape)
	}
	return nil
}

// newFeatures builds the output tensor for an input of shape inShape with
// the trailing axis replaced by nInv.
func newFeatures(inShape []int, nInv int, data []float64) *Features {
	shape := make([]int, len(inShape))
	copy(shape, inShape)
	shape[len(shape)-1] = nInv
	return &Features{Shape: shape, Data: data}
}
