package sheet

import (
	"strings"

	"sheetrun/internal/domain"
)

// DistributionPrefixes are the ID prefixes counted in the load summary
var DistributionPrefixes = []string{"Pos_Fun", "Neg_Fun", "Pos_UI", "Neg_UI"}

// Distribution counts cases per ID prefix
func Distribution(cases []domain.TestCase) map[string]int {
	dist := make(map[string]int, len(DistributionPrefixes))
	for _, prefix := range DistributionPrefixes {
		dist[prefix] = 0
	}
	for _, tc := range cases {
		for _, prefix := range DistributionPrefixes {
			if strings.HasPrefix(tc.ID, prefix) {
				dist[prefix]++
			}
		}
	}
	return dist
}
