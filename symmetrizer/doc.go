// doc.go --  This file is part of goSymm project.
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

// Package symmetrizer reduces per-species spherical-tensor expansion
// coefficients to rotationally invariant feature vectors for machine
// learning of electronic structure.
//
// Input tensors are indexed along their trailing axis by radial channel n,
// angular momentum l and magnetic quantum number m, in the order n-major,
// l next, m in [-l, l] innermost. Two reductions are provided:
//
//   - Casimir: the squared norm of every (n, l) block, one scalar each.
//   - Bispectrum: the Casimir invariants followed by all triple couplings
//     b(l1, l2, l) contracted through Clebsch-Gordan coefficients.
//
// Both are invariant under 3D rotation of the underlying physical
// configuration. A Symmetrizer applies the configured reduction across a
// species-to-tensor mapping, or across an ordered batch of such mappings.
package symmetrizer
