// symmetrizer.go --  This file is part of goSymm project.
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
	"log"
	"os"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// WarningLogger receives auxiliary diagnostics. Not load-bearing; replace
// or silence it as needed.
var WarningLogger = log.New(os.Stderr, "WARNING: ", log.Ldate|log.Ltime)

// Variant selects one of the implemented reductions.
type Variant int

const (
	Casimir Variant = iota
	Bispectrum
)

func (v Variant) String() string {
	switch v {
	case Casimir:
		return "casimir"
	case Bispectrum:
		return "bispectrum"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// ParseVariant maps a case-insensitive variant name to its Variant.
func ParseVariant(name string) (Variant, error) {
	switch strings.ToLower(name) {
	case "casimir":
		return Casimir, nil
	case "bispectrum":
		return Bispectrum, nil
	}
	return 0, fmt.Errorf("symmetrizer: unknown variant %q: %w", name, ErrBadConfig)
}

// Config specifies a Symmetrizer: the reduction variant by name and the
// per-species basis descriptors.
type Config struct {
	Variant string           // "casimir" or "bispectrum", case-insensitive
	Basis   map[string]Basis // tensor layout per species
}

// Symmetrizer applies the configured reduction across species-to-tensor
// mappings. The bispectrum variant builds its CG table once, at
// construction, for the largest L among the configured species; after New
// returns, a Symmetrizer is immutable and safe for concurrent use.
type Symmetrizer struct {
	variant Variant
	basis   map[string]Basis
	cgs     *CGTable // nil for the Casimir variant
}

// New validates cfg and constructs the matching Symmetrizer.
func New(cfg Config) (*Symmetrizer, error) {
	if cfg.Variant == "" {
		return nil, fmt.Errorf("symmetrizer: config must name a variant: %w", ErrBadConfig)
	}
	v, err := ParseVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	if len(cfg.Basis) == 0 {
		return nil, fmt.Errorf("symmetrizer: config has no species basis entries: %w", ErrBadConfig)
	}
	basis := make(map[string]Basis, len(cfg.Basis))
	nLMax := 0
	for _, spec := range sortedKeys(cfg.Basis) {
		b := cfg.Basis[spec]
		if b.L < 1 || b.N < 1 {
			return nil, fmt.Errorf("symmetrizer: species %s needs L >= 1 and N >= 1, got (%d,%d): %w",
				spec, b.L, b.N, ErrBadConfig)
		}
		basis[spec] = b
		nLMax = max(nLMax, b.L)
	}
	s := &Symmetrizer{variant: v, basis: basis}
	if v == Bispectrum {
		WarningLogger.Println("the bispectrum symmetrizer has not been thoroughly tested yet")
		if s.cgs, err = BuildCGTable(nLMax); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Params reports the configuration back, with the variant name in its
// canonical lowercase form.
func (s *Symmetrizer) Params() Config {
	basis := make(map[string]Basis, len(s.basis))
	for spec, b := range s.basis {
		basis[spec] = b
	}
	return Config{Variant: s.variant.String(), Basis: basis}
}

// Symmetrize reduces every species tensor in C with that species'
// configured basis and returns the invariants under the same keys. Species
// are processed in sorted key order, so failures are deterministic; a
// species without a basis entry fails with ErrBadConfig.
func (s *Symmetrizer) Symmetrize(C map[string]*Coeffs) (map[string]*Features, error) {
	D := make(map[string]*Features, len(C))
	for _, spec := range sortedKeys(C) {
		b, ok := s.basis[spec]
		if !ok {
			return nil, fmt.Errorf("symmetrizer: species %s has no basis entry: %w", spec, ErrBadConfig)
		}
		var (
			d   *Features
			err error
		)
		switch s.variant {
		case Casimir:
			d, err = CasimirInvariants(C[spec], b)
		case Bispectrum:
			d, err = BispectrumInvariants(C[spec], b, s.cgs)
		}
		if err != nil {
			return nil, err
		}
		D[spec] = d
	}
	return D, nil
}

// SymmetrizeBatch applies Symmetrize to every mapping in C independently,
// preserving length and order.
func (s *Symmetrizer) SymmetrizeBatch(C []map[string]*Coeffs) ([]map[string]*Features, error) {
	D := make([]map[string]*Features, len(C))
	for i, el := range C {
		d, err := s.Symmetrize(el)
		if err != nil {
			return nil, fmt.Errorf("symmetrizer: batch element %d: %w", i, err)
		}
		D[i] = d
	}
	return D, nil
}

// Gradient would chain dE/dD back to dE/dC through the reduction. It is
// not implemented and always fails with ErrNotImplemented.
func (s *Symmetrizer) Gradient(dEdD map[string]*Features) (map[string]*Coeffs, error) {
	return nil, fmt.Errorf("symmetrizer: gradient of the %s reduction: %w", s.variant, ErrNotImplemented)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}
