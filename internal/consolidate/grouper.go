package consolidate

import "reshelve/internal/textutil"

const (
	similarityThreshold = 0.8
	jaccardThreshold    = 0.6
)

// Grouper partitions discovered directories into per-show groups.
type Grouper struct{}

// NewGrouper returns a Grouper.
func NewGrouper() *Grouper {
	return &Grouper{}
}

// SameShow reports whether two directories name the same show. The predicate
// is symmetric: normalized equality, then edit-distance similarity on the
// normalized titles, then word overlap on the raw titles.
func (g *Grouper) SameShow(a, b ShowDirectory) bool {
	if a.NormalizedTitle == b.NormalizedTitle {
		return true
	}
	if textutil.SimilarityRatio(a.NormalizedTitle, b.NormalizedTitle) > similarityThreshold {
		return true
	}
	return textutil.WordJaccard(a.RawTitle, b.RawTitle) > jaccardThreshold
}

// Group partitions directories in input order. Each unassigned directory
// seeds a group and later directories are tested against the seed only, so
// chains of pairwise-similar titles do not collapse transitively.
func (g *Grouper) Group(directories []ShowDirectory) []ShowGroup {
	var groups []ShowGroup
	assigned := make([]bool, len(directories))

	for i, seed := range directories {
		if assigned[i] {
			continue
		}
		group := ShowGroup{
			CanonicalTitle: seed.RawTitle,
			Year:           seed.Year,
			Members:        []ShowDirectory{seed},
		}
		assigned[i] = true

		for j := i + 1; j < len(directories); j++ {
			if assigned[j] {
				continue
			}
			if g.SameShow(seed, directories[j]) {
				group.Members = append(group.Members, directories[j])
				assigned[j] = true
			}
		}
		groups = append(groups, group)
	}
	return groups
}
