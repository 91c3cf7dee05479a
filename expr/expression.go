package expr

// Monomial is one term of an Expression: Coefficient * (Symbols product) *
// s^Degree. Symbols is kept sorted ascending so two monomials can be
// compared for fusion by direct slice equality.
type Monomial struct {
	Symbols     []string
	Coefficient float64
	Degree      int
}

func sameSymbols(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AddSymbol inserts s into the monomial's symbol tuple, keeping it sorted
// ascending, and returns the monomial for chaining.
func (m *Monomial) AddSymbol(s string) *Monomial {
	m.Symbols = insertSorted(m.Symbols, s)
	return m
}

// insertSorted inserts s into an ascending-sorted slice, keeping order.
func insertSorted(syms []string, s string) []string {
	i := 0
	for i < len(syms) && syms[i] < s {
		i++
	}
	syms = append(syms, "")
	copy(syms[i+1:], syms[i:])
	syms[i] = s
	return syms
}

// Expression is a canonical sum of monomials: sorted by descending Degree,
// and within a degree, no two monomials share a symbol tuple — Insert fuses
// those by summing coefficients instead.
type Expression struct {
	monomials []*Monomial
}

// New returns an empty Expression.
func New() *Expression {
	return &Expression{}
}

// Monomials returns the expression's terms in canonical order. The
// returned slice must not be mutated by callers.
func (e *Expression) Monomials() []*Monomial {
	return e.monomials
}

// Len returns the number of distinct monomials.
func (e *Expression) Len() int {
	return len(e.monomials)
}

// Insert adds m to the expression, fusing it into an existing monomial of
// the same degree and symbol tuple if one exists (coefficients summed),
// otherwise splicing it into its sorted position.
func (e *Expression) Insert(m *Monomial) {
	for i, existing := range e.monomials {
		if existing.Degree == m.Degree && sameSymbols(existing.Symbols, m.Symbols) {
			existing.Coefficient += m.Coefficient
			return
		}
		if existing.Degree < m.Degree {
			e.monomials = append(e.monomials, nil)
			copy(e.monomials[i+1:], e.monomials[i:])
			e.monomials[i] = m
			return
		}
	}
	e.monomials = append(e.monomials, m)
}
