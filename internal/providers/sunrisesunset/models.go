package sunrisesunset

// StatusOK is the status value of a successful lookup
const StatusOK = "OK"

type SunAPIResponse struct {
	Status  string     `json:"status"`
	Results SunResults `json:"results"`
}

type SunResults struct {
	Date       string `json:"date"`
	Sunrise    string `json:"sunrise"`
	Sunset     string `json:"sunset"`
	FirstLight string `json:"first_light"`
	LastLight  string `json:"last_light"`
	Dawn       string `json:"dawn"`
	Dusk       string `json:"dusk"`
	SolarNoon  string `json:"solar_noon"`
	GoldenHour string `json:"golden_hour"`
	DayLength  string `json:"day_length"`
	Timezone   string `json:"timezone"`
	UtcOffset  int    `json:"utc_offset"`
}
