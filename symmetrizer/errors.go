// errors.go --  This file is part of goSymm project.
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

import "errors"

// Sentinel error set for the package. Callers match with errors.Is; call
// sites wrap with fmt.Errorf("...: %w", ErrX) to add context. All errors
// are fatal to the call that raised them: the reductions are deterministic,
// so there is nothing to retry and no partial result to salvage.
var (
	// ErrBadConfig covers configuration failures: a missing or unrecognized
	// variant name, a missing per-species basis entry, or an invalid basis
	// descriptor (L < 1 or N < 1).
	ErrBadConfig = errors.New("symmetrizer: invalid configuration")

	// ErrBadShape is returned when the trailing dimension of a coefficient
	// tensor does not match the flattened basis size of its (L, N) descriptor.
	ErrBadShape = errors.New("symmetrizer: coefficient shape inconsistent with basis")

	// ErrNotReal signals a bispectrum coefficient with a non-negligible
	// imaginary part. Coupling-coefficient symmetry guarantees real values
	// for well-formed input, so this points at corrupted coefficients or an
	// index bookkeeping bug and is surfaced instead of silently discarded.
	ErrNotReal = errors.New("symmetrizer: non-real bispectrum coefficient")

	// ErrNotImplemented is returned by Gradient. Back-propagation through
	// the symmetrizer is documented as unimplemented.
	ErrNotImplemented = errors.New("symmetrizer: not implemented")
)
