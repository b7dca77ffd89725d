package pp

import (
	"fmt"

	"github.com/epfl-lara/lean/doc"
)

func doc0(s string) doc.Doc { return doc.Text(s) }

// litDoc renders a folded Nat.succ/Nat.zero chain as its decimal numeral.
func litDoc(unicode bool, n int) doc.Doc {
	return doc.Text(fmt.Sprintf("%d", n))
}
