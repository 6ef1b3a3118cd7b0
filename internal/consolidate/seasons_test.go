package consolidate

import "testing"

func TestResolveSeasonExplicitWins(t *testing.T) {
	member := ShowDirectory{Season: 7, Year: 2018}
	group := ShowGroup{Year: 1999}
	if got := ResolveSeason(member, group); got != 7 {
		t.Errorf("season = %d, want explicit 7", got)
	}
}

func TestResolveSeasonYearOffset(t *testing.T) {
	group := ShowGroup{Year: 1999}
	cases := []struct {
		year int
		want int
	}{
		{1999, 1},
		{2012, 14},
		{2018, 20},
		{2020, 22},
	}
	for _, tc := range cases {
		if got := ResolveSeason(ShowDirectory{Year: tc.year}, group); got != tc.want {
			t.Errorf("ResolveSeason(year=%d) = %d, want %d", tc.year, got, tc.want)
		}
	}
}

func TestResolveSeasonUnresolvable(t *testing.T) {
	cases := []struct {
		name   string
		member ShowDirectory
		group  ShowGroup
	}{
		{"no member year", ShowDirectory{}, ShowGroup{Year: 1999}},
		{"no group year", ShowDirectory{Year: 2012}, ShowGroup{}},
		{"offset below range", ShowDirectory{Year: 1990}, ShowGroup{Year: 1999}},
		{"offset above range", ShowDirectory{Year: 2050}, ShowGroup{Year: 1999}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ResolveSeason(tc.member, tc.group); got != 0 {
				t.Errorf("season = %d, want unresolved", got)
			}
		})
	}
}
