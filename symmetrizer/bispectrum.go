// bispectrum.go --  This file is part of goSymm project.
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
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

const (
	// cgBlockTol: a CG sub-block with Frobenius norm below this is treated
	// as selection-rule forbidden and its triple skipped.
	cgBlockTol = 1e-15
	// imagTol: largest imaginary part a bispectrum value may carry before
	// it is rejected as non-real.
	imagTol = 1e-5
	// roundScale: bispectrum values are rounded to 5 decimals to suppress
	// floating-point noise in the stored features.
	roundScale = 1e5
)

// BispectrumInvariants reduces c to its Casimir invariants followed by the
// triple-coupling invariants
//
//	b(l1,l2,l) = sum over m, m1, m2 of conj(c[l,m]) c[l1,m1] c[l2,m2] ⟨l1 m1; l2 m2|l m⟩
//
// per radial channel, enumerated n-major, then l1, l2, l inner, keeping
// only triples inside the coupling range |l1-l2| <= l < min(l1+l2+1, L)
// with a non-vanishing CG sub-block. Each value must come out real; a
// residual imaginary part above tolerance fails with ErrNotReal.
//
// cgs may be nil, in which case a table for b.L is built for this call;
// passing one table into many calls sharing an L is the intended
// amortization. A table built for fewer channels than b.L fails with
// ErrBadConfig.
func BispectrumInvariants(c *Coeffs, b Basis, cgs *CGTable) (*Features, error) {
	cas, err := CasimirInvariants(c, b)
	if err != nil {
		return nil, err
	}
	if cgs == nil {
		if cgs, err = BuildCGTable(b.L); err != nil {
			return nil, err
		}
	}
	if cgs.L() < b.L {
		return nil, fmt.Errorf("symmetrizer: CG table built for %d angular channels, species needs %d: %w",
			cgs.L(), b.L, ErrBadConfig)
	}

	rows := c.samples()
	if rows == 0 {
		// Empty batch: the triple count depends only on L and the table,
		// so the trailing axis is still well defined.
		nTriples := 0
		for l1 := 0; l1 < b.L; l1++ {
			for l2 := 0; l2 < b.L; l2++ {
				for l := iabs(l1 - l2); l < min(l1+l2+1, b.L); l++ {
					if cgs.BlockNorm(l1, l2, l) >= cgBlockTol {
						nTriples++
					}
				}
			}
		}
		return newFeatures(c.Shape, b.N*(b.L+nTriples), nil), nil
	}
	cm := mat.NewCDense(rows, b.Size(), c.Data)

	// Offsets of each l-block within one radial channel.
	perChan := 0
	start := make([]int, b.L)
	for l := 0; l < b.L; l++ {
		start[l] = perChan
		perChan += 2*l + 1
	}

	var cols [][]float64 // one feature column per accepted (n, l1, l2, l)
	buf := make([]complex128, rows)
	for n := 0; n < b.N; n++ {
		off := n * perChan
		for l1 := 0; l1 < b.L; l1++ {
			for l2 := 0; l2 < b.L; l2++ {
				for l := iabs(l1 - l2); l < min(l1+l2+1, b.L); l++ {
					if cgs.BlockNorm(l1, l2, l) < cgBlockTol {
						continue
					}
					for i := range buf {
						buf[i] = 0
					}
					for m := -l; m <= l; m++ {
						for m1 := -l1; m1 <= l1; m1++ {
							for m2 := -l2; m2 <= l2; m2++ {
								cg := cgs.At(l1, m1, l2, m2, l, m)
								if cg == 0 {
									continue
								}
								for i := 0; i < rows; i++ {
									buf[i] += cmplx.Conj(cm.At(i, off+start[l]+m+l)) *
										cm.At(i, off+start[l1]+m1+l1) *
										cm.At(i, off+start[l2]+m2+l2) * cg
								}
							}
						}
					}
					col := make([]float64, rows)
					for i, v := range buf {
						if math.Abs(imag(v)) > imagTol {
							return nil, fmt.Errorf("symmetrizer: value %v at (n=%d, l1=%d, l2=%d, l=%d): %w",
								v, n, l1, l2, l, ErrNotReal)
						}
						col[i] = math.Round(real(v)*roundScale) / roundScale
					}
					cols = append(cols, col)
				}
			}
		}
	}

	casPart := b.N * b.L
	nInv := casPart + len(cols)
	data := make([]float64, rows*nInv)
	for i := 0; i < rows; i++ {
		copy(data[i*nInv:], cas.Data[i*casPart:(i+1)*casPart])
		for j, col := range cols {
			data[i*nInv+casPart+j] = col[i]
		}
	}
	return newFeatures(c.Shape, nInv, data), nil
}
