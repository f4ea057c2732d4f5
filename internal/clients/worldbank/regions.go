package worldbank

// Regions maps ISO3 country codes to the region used for grouping and
// filtering. Doubling as an allowlist: codes absent from this table are the
// API's regional/income aggregates and are dropped during ingestion.
var Regions = map[string]string{
	// Europe
	"ALB": "Europe", "AUT": "Europe", "BEL": "Europe", "BGR": "Europe",
	"BIH": "Europe", "BLR": "Europe", "CHE": "Europe", "CYP": "Europe",
	"CZE": "Europe", "DEU": "Europe", "DNK": "Europe", "ESP": "Europe",
	"EST": "Europe", "FIN": "Europe", "FRA": "Europe", "GBR": "Europe",
	"GRC": "Europe", "HRV": "Europe", "HUN": "Europe", "IRL": "Europe",
	"ISL": "Europe", "ITA": "Europe", "LTU": "Europe", "LUX": "Europe",
	"LVA": "Europe", "MDA": "Europe", "MKD": "Europe", "MLT": "Europe",
	"MNE": "Europe", "NLD": "Europe", "NOR": "Europe", "POL": "Europe",
	"PRT": "Europe", "ROU": "Europe", "RUS": "Europe", "SRB": "Europe",
	"SVK": "Europe", "SVN": "Europe", "SWE": "Europe", "UKR": "Europe",

	// Asia
	"AFG": "Asia", "BGD": "Asia", "BTN": "Asia", "CHN": "Asia",
	"HKG": "Asia", "IDN": "Asia", "IND": "Asia", "JPN": "Asia",
	"KAZ": "Asia", "KGZ": "Asia", "KHM": "Asia", "KOR": "Asia",
	"LAO": "Asia", "LKA": "Asia", "MMR": "Asia", "MNG": "Asia",
	"MYS": "Asia", "NPL": "Asia", "PAK": "Asia", "PHL": "Asia",
	"SGP": "Asia", "THA": "Asia", "TJK": "Asia", "TKM": "Asia",
	"UZB": "Asia", "VNM": "Asia", "TWN": "Asia",

	// Middle East
	"ARE": "Middle East", "BHR": "Middle East", "IRN": "Middle East",
	"IRQ": "Middle East", "ISR": "Middle East", "JOR": "Middle East",
	"KWT": "Middle East", "LBN": "Middle East", "OMN": "Middle East",
	"QAT": "Middle East", "SAU": "Middle East", "SYR": "Middle East",
	"TUR": "Middle East", "YEM": "Middle East",

	// Africa
	"AGO": "Africa", "BDI": "Africa", "BEN": "Africa", "BFA": "Africa",
	"BWA": "Africa", "CAF": "Africa", "CIV": "Africa", "CMR": "Africa",
	"COD": "Africa", "COG": "Africa", "DZA": "Africa", "EGY": "Africa",
	"ETH": "Africa", "GAB": "Africa", "GHA": "Africa", "GIN": "Africa",
	"GMB": "Africa", "KEN": "Africa", "LBY": "Africa", "LSO": "Africa",
	"MAR": "Africa", "MDG": "Africa", "MLI": "Africa", "MOZ": "Africa",
	"MRT": "Africa", "MUS": "Africa", "MWI": "Africa", "NAM": "Africa",
	"NER": "Africa", "NGA": "Africa", "RWA": "Africa", "SDN": "Africa",
	"SEN": "Africa", "SLE": "Africa", "SOM": "Africa", "SSD": "Africa",
	"TCD": "Africa", "TGO": "Africa", "TUN": "Africa", "TZA": "Africa",
	"UGA": "Africa", "ZAF": "Africa", "ZMB": "Africa", "ZWE": "Africa",

	// North America
	"CAN": "North America", "CRI": "North America", "CUB": "North America",
	"DOM": "North America", "GTM": "North America", "HND": "North America",
	"HTI": "North America", "JAM": "North America", "MEX": "North America",
	"NIC": "North America", "PAN": "North America", "SLV": "North America",
	"TTO": "North America", "USA": "North America",

	// South America
	"ARG": "South America", "BOL": "South America", "BRA": "South America",
	"CHL": "South America", "COL": "South America", "ECU": "South America",
	"GUY": "South America", "PER": "South America", "PRY": "South America",
	"SUR": "South America", "URY": "South America", "VEN": "South America",

	// Oceania
	"AUS": "Oceania", "FJI": "Oceania", "NZL": "Oceania", "PNG": "Oceania",
	"SLB": "Oceania", "WSM": "Oceania",
}
