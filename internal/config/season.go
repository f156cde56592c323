package config

// SeasonConfig selects which slice of the schedule to fetch.
type SeasonConfig struct {
	Year int
	Week int // 0 = whatever week the endpoint considers current
}

func loadSeason() SeasonConfig {
	return SeasonConfig{
		Year: intEnvOrDefault(envSeasonYear, defaultSeasonYear),
		Week: nonNegIntEnvOrDefault(envSeasonWeek, defaultSeasonWeek),
	}
}
