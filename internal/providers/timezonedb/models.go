package timezonedb

// StatusOK is the status value of a successful lookup
const StatusOK = "OK"

type GetTimeZoneAPIResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	CountryCode      string `json:"countryCode"`
	CountryName      string `json:"countryName"`
	RegionName       string `json:"regionName"`
	CityName         string `json:"cityName"`
	ZoneName         string `json:"zoneName"`
	Abbreviation     string `json:"abbreviation"`
	GmtOffset        int    `json:"gmtOffset"`
	Dst              string `json:"dst"`
	ZoneStart        int64  `json:"zoneStart"`
	ZoneEnd          int64  `json:"zoneEnd"`
	NextAbbreviation string `json:"nextAbbreviation"`
	Timestamp        int64  `json:"timestamp"`
	Formatted        string `json:"formatted"`
}
