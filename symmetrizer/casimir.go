// casimir.go --  This file is part of goSymm project.
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

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CasimirInvariants reduces c to its Casimir invariants: for every radial
// channel n and angular channel l, the squared Euclidean norm of the
// (2l+1)-long m-block. Wigner D-matrices are unitary, so each block norm is
// invariant under rotation. The output trailing axis has length N*L,
// ordered n-major with l inner; the leading axes of c are preserved.
func CasimirInvariants(c *Coeffs, b Basis) (*Features, error) {
	if err := checkShape(c, b); err != nil {
		return nil, err
	}
	rows := c.samples()
	nInv := b.N * b.L
	if rows == 0 {
		// A zero-length batch axis carries no samples to reduce; the
		// output keeps the empty leading axes and the N*L trailing axis.
		return newFeatures(c.Shape, nInv, nil), nil
	}
	cm := mat.NewCDense(rows, b.Size(), c.Data)
	out := mat.NewDense(rows, nInv, nil)
	scratch := make([]float64, 2*b.L-1)
	for i := 0; i < rows; i++ {
		idx, col := 0, 0
		for n := 0; n < b.N; n++ {
			for l := 0; l < b.L; l++ {
				dim := 2*l + 1
				for m := 0; m < dim; m++ {
					v := cm.At(i, idx+m)
					scratch[m] = real(v)*real(v) + imag(v)*imag(v)
				}
				out.Set(i, col, floats.Sum(scratch[:dim]))
				idx += dim
				col++
			}
		}
	}
	return newFeatures(c.Shape, nInv, out.RawMatrix().Data), nil
}
