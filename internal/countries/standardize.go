// Package countries maps scraped country name variants onto the canonical
// names the map library recognizes.
package countries

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalizer resolves scraped display names to canonical map names.
type Normalizer struct {
	aliasToCanonical map[string]string
	canonical        map[string]bool
}

// NewNormalizer builds the lookup tables.
func NewNormalizer() *Normalizer {
	n := &Normalizer{
		aliasToCanonical: make(map[string]string),
		canonical:        make(map[string]bool),
	}

	// Canonical names map to themselves so Standardize is idempotent.
	for _, name := range canonicalNames {
		n.canonical[name] = true
		n.aliasToCanonical[foldName(name)] = name
	}
	for alias, canonical := range countryAliases {
		n.aliasToCanonical[foldName(alias)] = canonical
	}

	return n
}

// Standardize maps a scraped display name to the canonical map name. Names
// with no known alias pass through unchanged.
func (n *Normalizer) Standardize(name string) string {
	if canonical, ok := n.aliasToCanonical[foldName(name)]; ok {
		return canonical
	}
	return name
}

// IsCanonical reports whether name is in the map library's location-name
// vocabulary. Names outside the vocabulary render blank on the map.
func (n *Normalizer) IsCanonical(name string) bool {
	return n.canonical[name]
}

// foldName normalizes a name for lookup: unicode-decomposed, diacritics and
// punctuation stripped, lowercased, whitespace collapsed.
func foldName(s string) string {
	s = norm.NFKD.String(s)

	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || unicode.IsSpace(r) {
			if unicode.IsLetter(r) {
				result.WriteRune(unicode.ToLower(r))
			} else {
				result.WriteRune(r)
			}
		}
	}

	return strings.Join(strings.Fields(result.String()), " ")
}

// countryAliases maps DFA display-name variants to canonical map names.
// This table is the single point of extension when a country fails to
// render: add the scraped variant here.
var countryAliases = map[string]string{
	"Usa":                      "United States",
	"United States Of America": "United States",
	"Uk":                       "United Kingdom",
	"Uae":                      "United Arab Emirates",
	"Drc":                      "Democratic Republic of the Congo",
	"Dr Congo":                 "Democratic Republic of the Congo",
	"Congo":                    "Republic of the Congo",
	"Dpr Korea":                "North Korea",
	"Republic Of Korea":        "South Korea",
	"Czech Republic":           "Czechia",
	"Ivory Coast":              "Côte d'Ivoire",
	"Burma":                    "Myanmar",
	"Cape Verde":               "Cabo Verde",
	"East Timor":               "Timor-Leste",
	"Laos":                     "Lao PDR",
	"Macedonia":                "North Macedonia",
	"Fyrom":                    "North Macedonia",
	"Swaziland":                "Eswatini",
	"The Bahamas":              "Bahamas",
	"The Gambia":               "Gambia",
	"Holland":                  "Netherlands",
	"Vatican City":             "Holy See",
	"Brunei Darussalam":        "Brunei",
	"Viet Nam":                 "Vietnam",
	"Turkiye":                  "Turkey",
}

// canonicalNames is the location-name vocabulary of the map library. Every
// country_standardized value reaching the renderer should be one of these.
var canonicalNames = []string{
	"Afghanistan",
	"Albania",
	"Algeria",
	"Andorra",
	"Angola",
	"Antigua and Barbuda",
	"Argentina",
	"Armenia",
	"Australia",
	"Austria",
	"Azerbaijan",
	"Bahamas",
	"Bahrain",
	"Bangladesh",
	"Barbados",
	"Belarus",
	"Belgium",
	"Belize",
	"Benin",
	"Bhutan",
	"Bolivia",
	"Bosnia and Herzegovina",
	"Botswana",
	"Brazil",
	"Brunei",
	"Bulgaria",
	"Burkina Faso",
	"Burundi",
	"Cabo Verde",
	"Cambodia",
	"Cameroon",
	"Canada",
	"Central African Republic",
	"Chad",
	"Chile",
	"China",
	"Colombia",
	"Comoros",
	"Costa Rica",
	"Croatia",
	"Cuba",
	"Cyprus",
	"Czechia",
	"Côte d'Ivoire",
	"Democratic Republic of the Congo",
	"Denmark",
	"Djibouti",
	"Dominica",
	"Dominican Republic",
	"Ecuador",
	"Egypt",
	"El Salvador",
	"Equatorial Guinea",
	"Eritrea",
	"Estonia",
	"Eswatini",
	"Ethiopia",
	"Fiji",
	"Finland",
	"France",
	"Gabon",
	"Gambia",
	"Georgia",
	"Germany",
	"Ghana",
	"Greece",
	"Grenada",
	"Guatemala",
	"Guinea",
	"Guinea-Bissau",
	"Guyana",
	"Haiti",
	"Holy See",
	"Honduras",
	"Hong Kong",
	"Hungary",
	"Iceland",
	"India",
	"Indonesia",
	"Iran",
	"Iraq",
	"Ireland",
	"Israel",
	"Italy",
	"Jamaica",
	"Japan",
	"Jordan",
	"Kazakhstan",
	"Kenya",
	"Kiribati",
	"Kuwait",
	"Kyrgyzstan",
	"Lao PDR",
	"Latvia",
	"Lebanon",
	"Lesotho",
	"Liberia",
	"Libya",
	"Liechtenstein",
	"Lithuania",
	"Luxembourg",
	"Macao",
	"Madagascar",
	"Malawi",
	"Malaysia",
	"Maldives",
	"Mali",
	"Malta",
	"Marshall Islands",
	"Mauritania",
	"Mauritius",
	"Mexico",
	"Micronesia",
	"Moldova",
	"Monaco",
	"Mongolia",
	"Montenegro",
	"Morocco",
	"Mozambique",
	"Myanmar",
	"Namibia",
	"Nauru",
	"Nepal",
	"Netherlands",
	"New Zealand",
	"Nicaragua",
	"Niger",
	"Nigeria",
	"North Korea",
	"North Macedonia",
	"Norway",
	"Oman",
	"Pakistan",
	"Palau",
	"Palestine",
	"Panama",
	"Papua New Guinea",
	"Paraguay",
	"Peru",
	"Philippines",
	"Poland",
	"Portugal",
	"Puerto Rico",
	"Qatar",
	"Republic of the Congo",
	"Romania",
	"Russia",
	"Rwanda",
	"Saint Kitts and Nevis",
	"Saint Lucia",
	"Saint Vincent and the Grenadines",
	"Samoa",
	"San Marino",
	"Sao Tome and Principe",
	"Saudi Arabia",
	"Senegal",
	"Serbia",
	"Seychelles",
	"Sierra Leone",
	"Singapore",
	"Slovakia",
	"Slovenia",
	"Solomon Islands",
	"Somalia",
	"South Africa",
	"South Korea",
	"South Sudan",
	"Spain",
	"Sri Lanka",
	"Sudan",
	"Suriname",
	"Sweden",
	"Switzerland",
	"Syria",
	"Taiwan",
	"Tajikistan",
	"Tanzania",
	"Thailand",
	"Timor-Leste",
	"Togo",
	"Tonga",
	"Trinidad and Tobago",
	"Tunisia",
	"Turkey",
	"Turkmenistan",
	"Tuvalu",
	"Uganda",
	"Ukraine",
	"United Arab Emirates",
	"United Kingdom",
	"United States",
	"Uruguay",
	"Uzbekistan",
	"Vanuatu",
	"Venezuela",
	"Vietnam",
	"Yemen",
	"Zambia",
	"Zimbabwe",
}
