package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/planetarysim/colonysim/internal/adapters/naming"
	"github.com/planetarysim/colonysim/internal/domain/colony"
)

// TreeFormatter renders a colony's facilities and production overview as an
// indented tree, the same shape the teacher's TreeFormatter renders a
// supply-chain dependency tree.
type TreeFormatter struct {
	names *naming.Cache
}

// NewTreeFormatter creates a new tree formatter.
func NewTreeFormatter() *TreeFormatter {
	return &TreeFormatter{names: naming.NewCache()}
}

// FormatColony renders a colony's status, final products, and per-facility
// contents.
func (f *TreeFormatter) FormatColony(k *colony.Colony) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Colony %d — status=%s sim_time=%s\n", k.ID, k.Status, k.CurrentSimTime.Format("2006-01-02T15:04:05Z"))

	fmt.Fprintf(&b, "Final products:")
	if len(k.Overview.FinalProducts) == 0 {
		fmt.Fprint(&b, " (none)")
	}
	for id := range k.Overview.FinalProducts {
		fmt.Fprintf(&b, " %d", id)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Storage: capacity=%.0f final_used=%.1f other_used=%.1f\n",
		k.Overview.StorageCapacity, k.Overview.FinalProductsUsed, k.Overview.OtherUsed)

	ids := make([]int64, 0, len(k.Pins))
	for id := range k.Pins {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for i, id := range ids {
		pin := k.Pins[id]
		prefix := "├── "
		if i == len(ids)-1 {
			prefix = "└── "
		}
		fmt.Fprintf(&b, "%s%s (%d) kind=%s active=%v\n", prefix, f.names.Name(id), id, pin.Kind, pin.IsActive)
		for typeID, qty := range pin.Contents {
			fmt.Fprintf(&b, "│       type=%d qty=%d\n", typeID, qty)
		}
	}
	return b.String()
}
