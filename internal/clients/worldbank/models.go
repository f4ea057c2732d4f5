package worldbank

// pageMetadata is the first element of every World Bank API response.
type pageMetadata struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
}

// observation is one row of the indicator response. Value is a pointer because
// the API reports missing years as explicit nulls.
type observation struct {
	Indicator struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"indicator"`
	Country struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"country"`
	CountryISO3Code string   `json:"countryiso3code"`
	Date            string   `json:"date"`
	Value           *float64 `json:"value"`
}
