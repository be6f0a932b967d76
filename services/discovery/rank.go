package discovery

import (
	"sort"
	"strings"

	"craftlink/models"
)

// rankContractors orders a discovery deck: contractors whose specialty
// matches one of the realtor's preferred specialties come first, ties broken
// by rating (descending) then name for a stable deck between sessions.
func rankContractors(contractors []models.User, preferred []string) []models.User {
	prefSet := make(map[string]bool, len(preferred))
	for _, p := range preferred {
		prefSet[strings.ToLower(p)] = true
	}

	ranked := make([]models.User, len(contractors))
	copy(ranked, contractors)

	sort.SliceStable(ranked, func(i, j int) bool {
		mi := prefSet[strings.ToLower(ranked[i].Specialty)]
		mj := prefSet[strings.ToLower(ranked[j].Specialty)]
		if mi != mj {
			return mi
		}
		if ranked[i].Rating != ranked[j].Rating {
			return ranked[i].Rating > ranked[j].Rating
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
