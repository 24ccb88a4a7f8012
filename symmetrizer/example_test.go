// example_test.go --  This file is part of goSymm project.
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
	"fmt"

	"example.com/goSymm/symmetrizer"
)

func ExampleSymmetrizer() {
	sym, err := symmetrizer.New(symmetrizer.Config{
		Variant: "casimir",
		Basis:   map[string]symmetrizer.Basis{"H": {L: 1, N: 1}},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	c, _ := symmetrizer.NewCoeffsReal([]int{1}, []float64{2})
	D, err := sym.Symmetrize(map[string]*symmetrizer.Coeffs{"H": c})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(D["H"].Data)
	// Output: [4]
}
