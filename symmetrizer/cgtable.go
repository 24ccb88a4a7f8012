// cgtable.go --  This file is part of goSymm project.
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
)

// CGTable holds the Clebsch-Gordan coupling coefficients ⟨l1 m1; l2 m2|l m⟩
// for all angular momenta below L. The table is dense 6D with extent
// [L, 2L-1, L, 2L-1, L, 2L-1], flattened into a single backing slice; the
// magnetic axes are offset so m = 0 sits at the center. Entries outside the
// selection rules are zero. Building the table is O(L^6) coefficient
// evaluations, so build once per L and share; it is immutable afterwards
// and safe for concurrent reads.
type CGTable struct {
	nL    int
	dm    int          // magnetic axis extent, 2*nL - 1
	data  []complex128 // flat [nL, dm, nL, dm, nL, dm]
	norms []float64    // Frobenius norm per (l1, l2, l) sub-block
}

// BuildCGTable computes the coupling coefficients for l1, l2, l in [0, nL).
// Fails for nL < 1.
func BuildCGTable(nL int) (*CGTable, error) {
	if nL < 1 {
		return nil, fmt.Errorf("symmetrizer: CG table needs at least one angular channel, got %d: %w",
			nL, ErrBadConfig)
	}
	t := &CGTable{nL: nL, dm: 2*nL - 1}
	t.data = make([]complex128, nL*t.dm*nL*t.dm*nL*t.dm)
	t.norms = make([]float64, nL*nL*nL)
	for l1 := 0; l1 < nL; l1++ {
		for l2 := 0; l2 < nL; l2++ {
			for l := 0; l < nL; l++ {
				ss := 0.0
				for m1 := -l1; m1 <= l1; m1++ {
					for m2 := -l2; m2 <= l2; m2++ {
						for m := -l; m <= l; m++ {
							v := ClebschGordan(l1, m1, l2, m2, l, m)
							t.data[t.index(l1, m1, l2, m2, l, m)] = complex(v, 0)
							ss += v * v
						}
					}
				}
				t.norms[(l1*nL+l2)*nL+l] = math.Sqrt(ss)
			}
		}
	}
	return t, nil
}

// L returns the number of angular channels the table was built for.
func (t *CGTable) L() int { return t.nL }

// At returns ⟨l1 m1; l2 m2|l m⟩. Magnetic numbers may range over the full
// symmetric window [-(L-1), L-1]; entries beyond [-l, l] are zero.
func (t *CGTable) At(l1, m1, l2, m2, l, m int) complex128 {
	return t.data[t.index(l1, m1, l2, m2, l, m)]
}

// BlockNorm returns the Frobenius norm of the (l1, l2, l) sub-block. A
// vanishing norm means the triple is forbidden by the selection rules and
// can be skipped wholesale.
func (t *CGTable) BlockNorm(l1, l2, l int) float64 {
	return t.norms[(l1*t.nL+l2)*t.nL+l]
}

func (t *CGTable) index(l1, m1, l2, m2, l, m int) int {
	lmax := t.nL - 1
	i := l1
	i = i*t.dm + m1 + lmax
	i = i*t.nL + l2
	i = i*t.dm + m2 + lmax
	i = i*t.nL + l
	i = i*t.dm + m + lmax
	return i
}

// ClebschGordan evaluates ⟨l1 m1; l2 m2|l m⟩ from the Racah closed form.
// Zero whenever m != m1+m2, the triangle rule |l1-l2| <= l <= l1+l2 fails,
// or a magnetic number exceeds its angular momentum.
func ClebschGordan(l1, m1, l2, m2, l, m int) float64 {
	if m1+m2 != m || l < iabs(l1-l2) || l > l1+l2 ||
		iabs(m1) > l1 || iabs(m2) > l2 || iabs(m) > l {
		return 0
	}
	pref := float64(2*l+1) * fact(l1+l2-l) * fact(l1-l2+l) * fact(-l1+l2+l) / fact(l1+l2+l+1)
	pref *= fact(l+m) * fact(l-m) * fact(l1+m1) * fact(l1-m1) * fact(l2+m2) * fact(l2-m2)
	sum := 0.0
	kmin := max(0, max(l2-l-m1, l1+m2-l))
	kmax := min(l1+l2-l, min(l1-m1, l2+m2))
	for k := kmin; k <= kmax; k++ {
		term := fact(k) * fact(l1+l2-l-k) * fact(l1-m1-k) * fact(l2+m2-k) *
			fact(l-l2+m1+k) * fact(l-l1-m2+k)
		if k%2 == 0 {
			sum += 1 / term
		} else {
			sum -= 1 / term
		}
	}
	return math.Sqrt(pref) * sum
}

func fact(n int) float64 {
	return math.Gamma(float64(n) + 1)
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
