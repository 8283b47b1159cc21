package jurisdiction

// DefaultOverrides returns the curated display-name exceptions. These are
// names the reference dataset resolves to the wrong code or not at all:
// disputed territories, BES islands, constituent regions with their own
// traffic law, and common short names.
func DefaultOverrides() map[string]string {
	return map[string]string{
		"Brunei":                           "BN",
		"Belgium:Brussels-Capital Region":  "BE-BRU",
		"Belgium:Flanders":                 "BE-VLG",
		"Belgium:Wallonia":                 "BE-WAL",
		"Democratic Republic of the Congo": "CD",
		"Kosovo":                           "XK",
		"Micronesia":                       "FM",
		"Micronesia:Kosrae":                "FM-KSA",
		"Micronesia:Pohnpei":               "FM-PNI",
		"Micronesia:Chuuk":                 "FM-TRK",
		"Micronesia:Yap":                   "FM-YAP",
		"Netherlands:Bonaire":              "NL-BQ1",
		"Netherlands:Saba":                 "NL-BQ2",
		"Netherlands:Sint Eustatius":       "NL-BQ3",
		"Palestine":                        "PS",
		"Pitcairn Islands":                 "PN",
		"Russia":                           "RU",
		"Turkey":                           "TR",
		"United Kingdom:Scotland":          "GB-SCT",
	}
}
