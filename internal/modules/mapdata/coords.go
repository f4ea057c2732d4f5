package mapdata

// Coord is a country's approximate centroid.
type Coord struct {
	Lat float64
	Lon float64
}

// Coords maps ISO3 country codes to approximate centroids for the 3D map.
// Countries absent from this table are dropped from the map payload.
var Coords = map[string]Coord{
	"ARG": {-34.6, -58.4},
	"AUS": {-25.3, 133.8},
	"AUT": {47.5, 14.6},
	"BEL": {50.5, 4.5},
	"BGD": {23.7, 90.4},
	"BGR": {42.7, 25.5},
	"BOL": {-16.3, -63.6},
	"BRA": {-14.2, -51.9},
	"CAN": {56.1, -106.3},
	"CHE": {46.8, 8.2},
	"CHL": {-35.7, -71.5},
	"CHN": {35.9, 104.2},
	"COL": {4.6, -74.3},
	"CZE": {49.8, 15.5},
	"DEU": {51.2, 10.5},
	"DNK": {56.3, 9.5},
	"DZA": {28.0, 1.7},
	"ECU": {-1.8, -78.2},
	"EGY": {26.8, 30.8},
	"ESP": {40.5, -3.7},
	"ETH": {9.1, 40.5},
	"FIN": {61.9, 25.7},
	"FRA": {46.2, 2.2},
	"GBR": {55.4, -3.4},
	"GHA": {7.9, -1.0},
	"GRC": {39.1, 21.8},
	"HUN": {47.2, 19.5},
	"IDN": {-0.8, 113.9},
	"IND": {20.6, 79.0},
	"IRL": {53.4, -8.2},
	"IRN": {32.4, 53.7},
	"IRQ": {33.2, 43.7},
	"ISR": {31.0, 34.9},
	"ITA": {41.9, 12.6},
	"JOR": {30.6, 36.2},
	"JPN": {36.2, 138.3},
	"KAZ": {48.0, 66.9},
	"KEN": {-0.0, 37.9},
	"KOR": {35.9, 127.8},
	"LKA": {7.9, 80.8},
	"MAR": {31.8, -7.1},
	"MEX": {23.6, -102.6},
	"MYS": {4.2, 101.9},
	"NGA": {9.1, 8.7},
	"NLD": {52.1, 5.3},
	"NOR": {60.5, 8.5},
	"NZL": {-40.9, 174.9},
	"PAK": {30.4, 69.3},
	"PER": {-9.2, -75.0},
	"PHL": {12.9, 121.8},
	"POL": {51.9, 19.1},
	"PRT": {39.4, -8.2},
	"ROU": {45.9, 25.0},
	"RUS": {61.5, 105.3},
	"SAU": {23.9, 45.1},
	"SGP": {1.4, 103.8},
	"SWE": {60.1, 18.6},
	"THA": {15.9, 101.0},
	"TUR": {38.96, 35.2},
	"TZA": {-6.4, 34.9},
	"UKR": {48.4, 31.2},
	"URY": {-32.5, -55.8},
	"USA": {37.1, -95.7},
	"VEN": {6.4, -66.6},
	"VNM": {14.1, 108.3},
	"ZAF": {-30.6, 22.9},
	"ZWE": {-19.0, 29.2},
}
