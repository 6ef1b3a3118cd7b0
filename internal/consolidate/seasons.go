package consolidate

// Seasons derived from year offsets are capped here; anything outside the
// range is treated as unresolved.
const maxDerivedSeason = 50

// ResolveSeason determines which season folder a member files under. An
// explicit season wins; otherwise the member's year is mapped to an ordinal
// relative to the group's first year. Returns 0 when no season can be
// determined.
func ResolveSeason(member ShowDirectory, group ShowGroup) int {
	if member.Season > 0 {
		return member.Season
	}
	if member.Year == 0 || group.Year == 0 {
		return 0
	}
	season := member.Year - group.Year + 1
	if season < 1 || season > maxDerivedSeason {
		return 0
	}
	return season
}
