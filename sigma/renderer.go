package sigma

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/vocdoni/sigmacompiler/reflectrecord"
	"github.com/vocdoni/sigmacompiler/symbolic"
)

// Spec renders a human-readable Markdown description of p's ψ and f
// equations. It evaluates both on dummy inputs (witness scalars 1..N_w;
// instance scalars 1..N_s and instance points 2G..(N_p+1)G) purely to walk
// the expression trees — the rendered text never shows these values, only
// the declared field names and WellKnownConst names ("G", "H", ...)
// substituted back in.
func Spec[W any, I any](p Protocol[W, I]) (string, error) {
	order := p.Curve.Order()

	nw, err := reflectrecord.NumScalars[W]()
	if err != nil {
		return "", err
	}
	wVals := make([]*big.Int, nw)
	for i := range wVals {
		wVals[i] = big.NewInt(int64(i + 1))
	}
	dummyW, err := reflectrecord.FromScalars[W](wVals, order)
	if err != nil {
		return "", err
	}

	ns, err := reflectrecord.NumScalars[I]()
	if err != nil {
		return "", err
	}
	np, err := reflectrecord.NumPoints[I]()
	if err != nil {
		return "", err
	}
	iVals := make([]*big.Int, ns)
	for i := range iVals {
		iVals[i] = big.NewInt(int64(i + 1))
	}
	iPoints := make([]symbolic.Curve, np)
	for i := range iPoints {
		g := p.Curve.New()
		g.SetGenerator()
		g.ScalarMult(g, big.NewInt(int64(i+2)))
		iPoints[i] = g
	}
	dummyX, err := reflectrecord.FromValues[I](iVals, iPoints, order)
	if err != nil {
		return "", err
	}

	fNames, err := reflectrecord.FieldNames[I]()
	if err != nil {
		return "", err
	}
	wNames, err := reflectrecord.FieldNames[W]()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Label)
	fmt.Fprintf(&b, "Witness: %s\n\n", strings.Join(wNames, ", "))
	fmt.Fprintf(&b, "Instance: %s\n\n", strings.Join(fNames, ", "))

	fmt.Fprintf(&b, "## f(X)\n\n")
	for i, expr := range p.F(dummyX) {
		fmt.Fprintf(&b, "- f_%d = %s\n", i, renderPoint(expr))
	}

	fmt.Fprintf(&b, "\n## ψ(ω, X)\n\n")
	for i, expr := range p.Psi(dummyW, dummyX) {
		fmt.Fprintf(&b, "- ψ_%d = %s\n", i, renderPoint(expr))
	}

	return b.String(), nil
}

func renderScalar(s *symbolic.SymScalar) string {
	n := s.Node()
	switch n.Op {
	case "const":
		return n.Constant.String()
	case "var":
		if n.Name != "" {
			return n.Name
		}
		return "s"
	case "add":
		return fmt.Sprintf("(%s + %s)", renderScalar(n.A), renderScalar(n.B))
	case "sub":
		return fmt.Sprintf("(%s - %s)", renderScalar(n.A), renderScalar(n.B))
	case "neg":
		return fmt.Sprintf("-%s", renderScalar(n.A))
	case "mul":
		return fmt.Sprintf("%s·%s", renderScalar(n.A), renderScalar(n.B))
	default:
		return "?"
	}
}

func renderPoint(p *symbolic.SymPoint) string {
	n := p.Node()
	switch n.Op {
	case "const":
		return "•"
	case "wellknown":
		return n.Name
	case "var":
		if n.Name != "" {
			return n.Name
		}
		return "P"
	case "add":
		return fmt.Sprintf("(%s + %s)", renderPoint(n.A), renderPoint(n.B))
	case "sub":
		return fmt.Sprintf("(%s - %s)", renderPoint(n.A), renderPoint(n.B))
	case "neg":
		return fmt.Sprintf("-%s", renderPoint(n.A))
	case "scale":
		return fmt.Sprintf("%s·%s", renderScalar(n.S), renderPoint(n.A))
	default:
		return "?"
	}
}
