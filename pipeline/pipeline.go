// pipeline.go --  This file is part of goSymm project.
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

// Package pipeline adapts a symmetrizer to fit/transform style learning
// pipelines. The adapters are deliberately thin free functions; the core
// stays estimator-agnostic.
package pipeline

import "example.com/goSymm/symmetrizer"

// Fit is a no-op that returns s: a symmetrizer carries no trainable state.
func Fit(s *symmetrizer.Symmetrizer, _ []map[string]*symmetrizer.Coeffs) *symmetrizer.Symmetrizer {
	return s
}

// Transform symmetrizes a batch of structures.
func Transform(s *symmetrizer.Symmetrizer, X []map[string]*symmetrizer.Coeffs) ([]map[string]*symmetrizer.Features, error) {
	return s.SymmetrizeBatch(X)
}

// TransformWithTarget symmetrizes X and forwards the target slice
// unchanged, for pipelines that thread (X, y) pairs through every stage.
func TransformWithTarget(s *symmetrizer.Symmetrizer, X []map[string]*symmetrizer.Coeffs, y []float64) ([]map[string]*symmetrizer.Features, []float64, error) {
	D, err := s.SymmetrizeBatch(X)
	if err != nil {
		return nil, nil, err
	}
	return D, y, nil
}

// Params reports the symmetrizer configuration.
func Params(s *symmetrizer.Symmetrizer) symmetrizer.Config {
	return s.Params()
}
