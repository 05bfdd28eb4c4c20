package types

// DayRecord holds the solar events of one calendar date at one location.
// Values are kept exactly as the upstream source formats them.
type DayRecord struct {
	Sunrise   string `json:"sunrise" example:"7:04:12 AM"`
	Sunset    string `json:"sunset" example:"6:51:40 PM"`
	Dawn      string `json:"dawn" example:"6:35:02 AM"`
	Dusk      string `json:"dusk" example:"7:20:50 PM"`
	DayLength string `json:"day_length" example:"11:47:28"`
	SolarNoon string `json:"solar_noon" example:"12:57:56 PM"`
}

// DateKeys are the YYYY-MM-DD keys for today and tomorrow
type DateKeys struct {
	Today    string
	Tomorrow string
}
