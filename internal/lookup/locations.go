package lookup

import (
	"regexp"
	"strings"

	"github.com/Coneja-Chibi/Cotton-Tales-sub001/internal/utils"
)

// Location is a background slug together with the phrases that evoke it.
type Location struct {
	Name    string
	Phrases []string
	pattern *regexp.Regexp
}

// Match reports whether text mentions the location. Accents are ignored.
func (l Location) Match(text string) bool {
	return l.pattern.MatchString(utils.Fold(text))
}

// More specific phrases come first so that "living room" wins over "room".
var locationTable = []struct {
	name    string
	phrases []string
}{
	{"living_room", []string{"living room", "lounge", "sitting room"}},
	{"bedroom", []string{"bedroom", "bed room", "her room", "his room", "their room", "dorm room"}},
	{"bathroom", []string{"bathroom", "restroom", "washroom"}},
	{"kitchen", []string{"kitchen", "kitchenette"}},
	{"classroom", []string{"classroom", "class room", "lecture hall"}},
	{"hallway", []string{"hallway", "corridor", "hall"}},
	{"rooftop", []string{"rooftop", "roof"}},
	{"library", []string{"library", "bookshelves", "archives"}},
	{"cafe", []string{"cafe", "coffee shop", "coffeehouse", "tea house"}},
	{"restaurant", []string{"restaurant", "diner", "bistro"}},
	{"tavern", []string{"tavern", "inn", "pub", "bar"}},
	{"office", []string{"office", "workplace", "cubicle"}},
	{"hospital", []string{"hospital", "clinic", "infirmary"}},
	{"gym", []string{"gym", "gymnasium", "dojo"}},
	{"shop", []string{"shop", "store", "market", "mall", "boutique"}},
	{"train_station", []string{"train station", "station platform", "subway"}},
	{"school", []string{"school", "academy", "campus"}},
	{"church", []string{"church", "chapel", "temple", "shrine", "cathedral"}},
	{"castle", []string{"castle", "palace", "throne room"}},
	{"dungeon", []string{"dungeon", "prison", "jail"}},
	{"cave", []string{"cave", "cavern", "grotto"}},
	{"garden", []string{"garden", "greenhouse", "courtyard"}},
	{"park", []string{"park", "playground"}},
	{"forest", []string{"forest", "woods", "woodland", "grove"}},
	{"beach", []string{"beach", "shore", "seaside", "coast"}},
	{"ocean", []string{"ocean", "sea", "ship deck", "aboard the ship"}},
	{"lake", []string{"lake", "pond", "riverbank", "river"}},
	{"mountain", []string{"mountain", "cliff", "peak", "summit"}},
	{"village", []string{"village", "hamlet", "town square"}},
	{"street", []string{"street", "road", "alley", "alleyway", "sidewalk"}},
	{"city", []string{"city", "downtown", "skyline"}},
	{"house", []string{"house", "home", "apartment", "cottage"}},
}

var locations = buildLocations()

func buildLocations() []Location {
	out := make([]Location, 0, len(locationTable))
	for _, row := range locationTable {
		quoted := make([]string, len(row.phrases))
		for i, p := range row.phrases {
			quoted[i] = regexp.QuoteMeta(p)
		}
		out = append(out, Location{
			Name:    row.name,
			Phrases: row.phrases,
			pattern: regexp.MustCompile(`(?i)\b(?:` + strings.Join(quoted, "|") + `)\b`),
		})
	}
	return out
}

// Locations returns the ordered location table. Callers must not modify it.
func Locations() []Location {
	return locations
}

// TimeOfDay is a background suffix and the words that suggest it.
type TimeOfDay struct {
	Suffix  string
	pattern *regexp.Regexp
}

// Match reports whether text mentions this time of day.
func (t TimeOfDay) Match(text string) bool {
	return t.pattern.MatchString(text)
}

var timesOfDay = []TimeOfDay{
	{Suffix: "_night", pattern: regexp.MustCompile(`(?i)\b(?:night|nighttime|midnight|moonlight|moonlit|starlit)\b`)},
	{Suffix: "_sunset", pattern: regexp.MustCompile(`(?i)\b(?:sunset|dusk|twilight|evening)\b`)},
	{Suffix: "_morning", pattern: regexp.MustCompile(`(?i)\b(?:morning|dawn|sunrise|daybreak)\b`)},
}

// TimesOfDay returns the time-of-day suffix table in priority order.
func TimesOfDay() []TimeOfDay {
	return timesOfDay
}
