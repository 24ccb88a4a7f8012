// sphharm.go --  This file is part of goSymm project.
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

// Package sphharm evaluates real spherical harmonics. It backs the
// projection side of the descriptor pipeline and the rotation-invariance
// tests of the symmetrizer core.
package sphharm

import "math"

// assocLegendre evaluates the associated Legendre polynomial P_l^m(x),
// Condon-Shortley phase included, by the standard three-term recurrence.
// Requires 0 <= m <= l and |x| <= 1.
func assocLegendre(l, m int, x float64) float64 {
	pmm := 1.0
	if m > 0 {
		somx2 := math.Sqrt((1 - x) * (1 + x))
		fact := 1.0
		for i := 1; i <= m; i++ {
			pmm *= -fact * somx2
			fact += 2
		}
	}
	if l == m {
		return pmm
	}
	pmmp1 := x * float64(2*m+1) * pmm
	if l == m+1 {
		return pmmp1
	}
	var pll float64
	for ll := m + 2; ll <= l; ll++ {
		pll = (float64(2*ll-1)*x*pmmp1 - float64(ll+m-1)*pmm) / float64(ll-m)
		pmm = pmmp1
		pmmp1 = pll
	}
	return pll
}

// renorm is the normalization sqrt((2l+1)(l-m)! / (4 pi (l+m)!)).
func renorm(l, m int) float64 {
	return math.Sqrt(float64(2*l+1) * fact(l-m) / (4 * math.Pi * fact(l+m)))
}

func fact(n int) float64 {
	return math.Gamma(float64(n) + 1)
}

// SH evaluates the real spherical harmonic Y_lm at polar angle theta and
// azimuthal angle phi, for l >= 0 and m in [-l, l].
func SH(l, m int, theta, phi float64) float64 {
	switch {
	case m == 0:
		return renorm(l, 0) * assocLegendre(l, 0, math.Cos(theta))
	case m > 0:
		return math.Sqrt2 * renorm(l, m) * math.Cos(float64(m)*phi) *
			assocLegendre(l, m, math.Cos(theta))
	default:
		return math.Sqrt2 * renorm(l, -m) * math.Sin(float64(-m)*phi) *
			assocLegendre(l, -m, math.Cos(theta))
	}
}
