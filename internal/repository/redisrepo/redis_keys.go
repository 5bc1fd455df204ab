package redisrepo

import "fmt"

const (
	USER_CACHE_KEY = "user-cache:%s"    // <userID>
	COUNTRIES_KEY  = "countries:%d:%d"  // <limit>:<offset>
	COUNTRY_KEY    = "country:%d"       // <countryID>
	PLACES_KEY     = "places:%s:%d:%d"  // <countryID|all>:<limit>:<offset>
	PLACE_KEY      = "place:%d"         // <placeID>
)

func UserCacheKey(userID string) string {
	return fmt.Sprintf(USER_CACHE_KEY, userID)
}

func CountriesKey(limit int, offset int) string {
	return fmt.Sprintf(COUNTRIES_KEY, limit, offset)
}

func CountryKey(countryID int64) string {
	return fmt.Sprintf(COUNTRY_KEY, countryID)
}

func PlacesKey(countryID *int64, limit int, offset int) string {
	country := "all"
	if countryID != nil {
		country = fmt.Sprintf("%d", *countryID)
	}
	return fmt.Sprintf(PLACES_KEY, country, limit, offset)
}

func PlaceKey(placeID int64) string {
	return fmt.Sprintf(PLACE_KEY, placeID)
}
