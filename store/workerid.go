package store

import (
	"fmt"
	"strings"

	"github.com/itousif38-netizen/SN-ENTP/models"
)

// orgTag prefixes every generated worker business ID.
const orgTag = "SNE/"

// Generic words skipped when deriving a key from a project name.
var nameStoplist = map[string]struct{}{
	"city": {},
	"ltd":  {},
	"site": {},
	"the":  {},
	"of":   {},
	"and":  {},
}

// NextWorkerID synthesizes the business ID for the next worker joining a
// project: the org tag, then the project's short code (or a key derived from
// its name), then a zero-padded sequence. The ID is fixed at creation time
// and never recomputed, so renaming a project or deleting a worker leaves
// issued IDs alone.
func NextWorkerID(p models.Project, existingInProject int) string {
	base := strings.TrimSpace(p.ProjectCode)
	if base == "" {
		base = orgTag + nameKey(p.Name)
	} else if !strings.HasPrefix(strings.ToUpper(base), orgTag) {
		base = orgTag + base
	}
	return fmt.Sprintf("%s-%03d", base, existingInProject+1)
}

// nameKey takes the initials of the first significant words of the project
// name, up to three letters. Stoplisted filler words don't contribute.
func nameKey(name string) string {
	var key strings.Builder
	for _, word := range strings.Fields(name) {
		if _, skip := nameStoplist[strings.ToLower(word)]; skip {
			continue
		}
		key.WriteString(strings.ToUpper(word[:1]))
		if key.Len() == 3 {
			break
		}
	}
	if key.Len() == 0 {
		return "PRJ"
	}
	return key.String()
}
