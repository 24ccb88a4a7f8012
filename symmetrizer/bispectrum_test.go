// bispectrum_test.go --  This file is part of goSymm project.
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

package symmetrizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/goSymm/symmetrizer"
)

func TestBispectrumSOrbital(t *testing.T) {
	// L=1 admits only l1=l2=l=0 with <0 0; 0 0|0 0> = 1, so the feature
	// vector is the Casimir invariant followed by conj(2)*2*2 = 8.
	c, err := symmetrizer.NewCoeffsReal([]int{1}, []float64{2})
	require.NoError(t, err)
	d, err := symmetrizer.BispectrumInvariants(c, symmetrizer.Basis{L: 1, N: 1}, nil)
	require.NoError(t, err)
	require.Equal(t, []int{2}, d.Shape)
	require.InDeltaSlice(t, []float64{4, 8}, d.Data, 1e-12)
}

func TestBispectrumCasimirPrefix(t *testing.T) {
	b := symmetrizer.Basis{L: 2, N: 1}
	c := randomCoeffs(t, b, []int{3, 4}, 11)

	cas, err := symmetrizer.CasimirInvariants(c, b)
	require.NoError(t, err)
	bis, err := symmetrizer.BispectrumInvariants(c, b, nil)
	require.NoError(t, err)

	// For L=2 five triples survive the selection rules:
	// (0,0,0), (0,1,1), (1,0,1), (1,1,0), (1,1,1).
	require.Equal(t, []int{3, 2 + 5}, bis.Shape)
	for i := 0; i < 3; i++ {
		require.InDeltaSlice(t, cas.Data[i*2:(i+1)*2], bis.Data[i*7:i*7+2], 1e-12)
	}
}

func TestBispectrumTrailingDimension(t *testing.T) {
	b := symmetrizer.Basis{L: 2, N: 2}
	c := randomCoeffs(t, b, []int{1, 8}, 3)
	d, err := symmetrizer.BispectrumInvariants(c, b, nil)
	require.NoError(t, err)
	// N*L Casimir entries plus 5 triples per radial channel.
	require.Equal(t, []int{1, 4 + 10}, d.Shape)
}

func TestBispectrumSharedTableMatchesOwnTable(t *testing.T) {
	b := symmetrizer.Basis{L: 3, N: 1}
	c := randomCoeffs(t, b, []int{2, 9}, 5)
	// A table built for more channels than needed must give identical results.
	cgs, err := symmetrizer.BuildCGTable(4)
	require.NoError(t, err)
	d1, err := symmetrizer.BispectrumInvariants(c, b, cgs)
	require.NoError(t, err)
	d2, err := symmetrizer.BispectrumInvariants(c, b, nil)
	require.NoError(t, err)
	require.Equal(t, d2.Shape, d1.Shape)
	require.InDeltaSlice(t, d2.Data, d1.Data, 1e-12)
}

func TestBispectrumTableTooSmall(t *testing.T) {
	b := symmetrizer.Basis{L: 2, N: 1}
	c := randomCoeffs(t, b, []int{1, 4}, 1)
	cgs, err := symmetrizer.BuildCGTable(1)
	require.NoError(t, err)
	_, err = symmetrizer.BispectrumInvariants(c, b, cgs)
	require.ErrorIs(t, err, symmetrizer.ErrBadConfig)
}

func TestBispectrumNonRealGuard(t *testing.T) {
	// c[1,0] = 1+1i with the rest of the p block zero breaks the conjugation
	// symmetry conj(c[l,m]) = (-1)^m c[l,-m], so the (1,1,0) triple picks up
	// an imaginary part ~ (1+1i)^2 / sqrt(3) and must be rejected.
	c, err := symmetrizer.NewCoeffs([]int{4}, []complex128{1, 0, 1 + 1i, 0})
	require.NoError(t, err)
	_, err = symmetrizer.BispectrumInvariants(c, symmetrizer.Basis{L: 2, N: 1}, nil)
	require.ErrorIs(t, err, symmetrizer.ErrNotReal)
}

func TestBispectrumEmptyBatch(t *testing.T) {
	c, err := symmetrizer.NewCoeffsReal([]int{0, 4}, nil)
	require.NoError(t, err)
	d, err := symmetrizer.BispectrumInvariants(c, symmetrizer.Basis{L: 2, N: 1}, nil)
	require.NoError(t, err)
	// Trailing axis: 2 Casimir entries plus the 5 surviving triples.
	require.Equal(t, []int{0, 7}, d.Shape)
	require.Empty(t, d.Data)
}

func TestBispectrumBadShape(t *testing.T) {
	c, err := symmetrizer.NewCoeffsReal([]int{3}, []float64{1, 2, 3})
	require.NoError(t, err)
	_, err = symmetrizer.BispectrumInvariants(c, symmetrizer.Basis{L: 2, N: 1}, nil)
	require.ErrorIs(t, err, symmetrizer.ErrBadShape)
}
