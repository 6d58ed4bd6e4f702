// Package render - human-readable rendering of parameter tables, node
// marginals, and sufficient statistics.
package render

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/bayem/core"
	"github.com/katalvlaran/bayem/em"
)

// Params renders the three probability tables of a parameter triple:
//
//	qx          P(X=0)  P(X=1)
//	qy          P(Y=0)  P(Y=1)
//	qz          one row per parent configuration (x,y)
func Params(p core.Params) string {
	var b strings.Builder
	b.WriteString("qx:  P(X=0)=")
	b.WriteString(prob(p.X[0]))
	b.WriteString("  P(X=1)=")
	b.WriteString(prob(p.X[1]))
	b.WriteByte('\n')

	b.WriteString("qy:  P(Y=0)=")
	b.WriteString(prob(p.Y[0]))
	b.WriteString("  P(Y=1)=")
	b.WriteString(prob(p.Y[1]))
	b.WriteByte('\n')

	b.WriteString("qz:\n")
	for a := 0; a < 2; a++ {
		for bb := 0; bb < 2; bb++ {
			fmt.Fprintf(&b, "  x=%d y=%d:  P(Z=0)=%s  P(Z=1)=%s\n",
				a, bb, prob(p.Z[a][bb][0]), prob(p.Z[a][bb][1]))
		}
	}
	return b.String()
}

// Marginals renders the single-node marginals implied by the triple,
// including the child's marginal P(Z=1) = Σ_{x,y} qx·qy·qz.
func Marginals(p core.Params) string {
	z1 := 0.0
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			z1 += p.X[a] * p.Y[b] * p.Z[a][b][1]
		}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "P(X=1)=%s  P(Y=1)=%s  P(Z=1)=%s\n",
		prob(p.X[1]), prob(p.Y[1]), prob(z1))
	return b.String()
}

// Stats renders expected sufficient statistics with their totals, in the
// same layout as Params so the two read side by side.
func Stats(st em.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Mx:  [%s %s]  total=%s\n",
		count(st.X[0]), count(st.X[1]), count(st.X[0]+st.X[1]))
	fmt.Fprintf(&b, "My:  [%s %s]  total=%s\n",
		count(st.Y[0]), count(st.Y[1]), count(st.Y[0]+st.Y[1]))
	b.WriteString("Mz:\n")
	for a := 0; a < 2; a++ {
		for bb := 0; bb < 2; bb++ {
			fmt.Fprintf(&b, "  x=%d y=%d:  [%s %s]\n",
				a, bb, count(st.Z[a][bb][0]), count(st.Z[a][bb][1]))
		}
	}
	return b.String()
}

// prob formats a probability with four decimals.
func prob(v float64) string { return fmt.Sprintf("%.4f", v) }

// count formats an expected count with two decimals.
func count(v float64) string { return fmt.Sprintf("%.2f", v) }
