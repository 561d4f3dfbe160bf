// Package domain models the weather station and earthquake records that the
// chart tools plot.
//
// # Weather Data
//
// Daily summaries come from the NOAA Climate Data Online (CDO) "simple" CSV
// export. Every file starts with a header row and carries one station-day per
// row:
//
//	"STATION","NAME","DATE","TAVG","TMAX","TMIN"
//	"USW00025333","SITKA AIRPORT, AK US","2021-01-01",,"40","36"
//
// Column positions differ between exports because optional columns (PRCP,
// TAVG, SNOW) are dropped when a station never reports them. A [ColumnLayout]
// pins the date, high, and low positions for one export:
//
//	Sitka:        DATE=2  TMAX=4  TMIN=5   ([SitkaLayout])
//	Death Valley: DATE=2  TMAX=3  TMIN=4   ([DeathValleyLayout])
//
// Dates use ISO 8601 calendar form (2006-01-02). Temperatures are whole
// degrees Fahrenheit. A missing reading is an empty field:
//
//	"USC00042319","DEATH VALLEY NATIONAL PARK, CA US","2021-05-04",,"72","89"
//
// [ParseWeatherRow] reports that case as [ErrInvalidNumber] so callers can
// decide between aborting and skipping the row.
//
// # Earthquake Data
//
// The USGS real-time feeds are GeoJSON FeatureCollections. Each element of
// the top-level "features" array is one event:
//
//	properties.mag            magnitude (number, may be null)
//	properties.title          "M 1.6 - 27 km NNW of Susitna, Alaska"
//	geometry.coordinates[0]   longitude, degrees east
//	geometry.coordinates[1]   latitude, degrees north
//	geometry.coordinates[2]   depth in km (unused)
//
// [ParseFeature] reads those four fields with gjson paths. A null or missing
// magnitude or coordinate is reported as [ErrInvalidNumber].
//
// # Series
//
// Charts take parallel slices rather than records. [WeatherSeries] and
// [EarthquakeSeries] keep their slices the same length so index i always
// refers to the same source record.
package domain
