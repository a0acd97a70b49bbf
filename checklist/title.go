package checklist

import (
	"fmt"
)

// Prefix is the fixed part of the published checklist title.
const Prefix = "WSTG-Checklist"

// Title returns the Drive title for a checklist, tagged with the version label
// if one was supplied e.g. WSTG-Checklist-4.2.xlsx. A supplied but empty label
// is still a label.
func Title(version string, tagged bool) string {
	if !tagged {
		return fmt.Sprintf("%s.xlsx", Prefix)
	}

	return fmt.Sprintf("%s-%s.xlsx", Prefix, version)
}
