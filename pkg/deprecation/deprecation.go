package deprecation

var (
	deprecatedKeys = map[string]bool{
		// Renamed to api_key/app_key when the config format settled
		"apikey": true,
		"appkey": true,
	}
)

// Deprecated returns true if the key is deprecated
func Deprecated(k string) bool {
	if _, ok := deprecatedKeys[k]; ok {
		return deprecatedKeys[k]
	}
	return false
}
