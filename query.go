package hunter

import (
	"net/url"
	"strconv"
)

// setIfNotEmpty adds key to q when value is non-empty. Unset parameters stay
// out of the query string entirely; the API treats absent and empty filters
// differently.
func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

// setIfPositive adds key to q when value is greater than zero.
func setIfPositive(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}
