package extract

import "strings"

// DefaultVehicle is the reserved column header meaning "no vehicle
// qualifier": produced tag keys pass through unchanged.
const DefaultVehicle = "(default)"

// rewriteRule scopes one provisional tag key to a vehicle type.
type rewriteRule struct {
	matches func(key string) bool
	apply   func(key, vehicle string) string
}

// The two special cases: maxspeed keys gain a :<vehicle> suffix component,
// and a bare access key is renamed to the vehicle itself. Everything else
// passes through.
var rewriteRules = []rewriteRule{
	{
		matches: func(key string) bool { return strings.Contains(key, "maxspeed") },
		apply: func(key, vehicle string) string {
			return strings.Replace(key, "maxspeed", "maxspeed:"+vehicle, 1)
		},
	},
	{
		matches: func(key string) bool { return key == "access" },
		apply:   func(_, vehicle string) string { return vehicle },
	},
}

// rewriteKey applies the first matching rule for a non-default vehicle
// type; keys for the default column are never rewritten.
func rewriteKey(key, vehicle string) string {
	if vehicle == DefaultVehicle {
		return key
	}
	for _, rule := range rewriteRules {
		if rule.matches(key) {
			return rule.apply(key, vehicle)
		}
	}
	return key
}
