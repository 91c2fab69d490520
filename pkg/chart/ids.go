package chart

import (
	"fmt"

	"github.com/google/uuid"
)

// elementID derives a stable SVG id from the chart id and a role, so
// repeated renders of the same chart produce identical documents.
func elementID(o Options, role string, index int, extra string) string {
	name := fmt.Sprintf("chartkit/%s/%s/%s/%d/%s", o.ID, o.Kind, role, index, extra)
	return "ck-" + uuid.NewSHA1(uuid.NameSpaceURL, []byte(name)).String()[:8]
}
