// File: utils/constants.go
package utils

// Cache key prefixes, one namespace per cached query family. Writes to a
// domain flush its whole namespace.
const (
	CalendarCachePrefix = "calendar:"
	HolidayCachePrefix  = "holiday:"
	HorizonCachePrefix  = "horizon:"
)

// DateLayout is the wire format for every date-only value: query params,
// stored horizon and bookmark dates, and free-block days.
const DateLayout = "2006-01-02"
