package crime

import (
	"strings"

	"github.com/aarnavnk17/AtlasWatch/schema"
)

const (
	// fallbackRange bounds the pseudo-score for unknown areas.
	fallbackRange = 500

	// scaleThreshold and scaleFactor map raw table scores (hundreds to
	// thousands) into the same range as fallback scores so the
	// consumer's thresholds behave the same on both paths.
	scaleThreshold = 300
	scaleFactor    = 20
)

// Resolver maps a free-text area name to a normalized risk breakdown
// against an immutable reference table. Lookups never fail: unknown
// areas get a deterministic pseudo-score derived from the input text.
type Resolver struct {
	table schema.CrimeTable
}

// NewResolver returns a resolver over the given reference table. The
// table is treated as read-only for the life of the resolver.
func NewResolver(table schema.CrimeTable) *Resolver {
	return &Resolver{table: table}
}

// Resolve returns the risk breakdown for an area name. Matching is
// case-insensitive and deliberately loose: the first city or sub-area
// whose name equals the input or is contained in it wins, walking the
// table in declaration order. Substring containment lets longer
// free-text addresses still resolve to a known city.
func (r *Resolver) Resolve(areaText string) schema.RiskBreakdown {
	search := strings.ToLower(areaText)

	score, found := r.lookup(search)
	if !found {
		score = fallbackScore(search)
	}

	normalized := normalize(score)

	third := normalized / 4
	return schema.RiskBreakdown{
		Theft:   third,
		Assault: third,
		Fraud:   third,
	}
}

func (r *Resolver) lookup(search string) (int, bool) {
	for _, state := range r.table.States {
		for _, city := range state.Cities {
			cityName := strings.ToLower(city.Name)

			if cityName == search {
				return city.Score, true
			}

			if strings.Contains(search, cityName) {
				return city.Score, true
			}

			for _, sub := range city.SubAreas {
				subName := strings.ToLower(sub.Name)
				if subName == search || strings.Contains(search, subName) {
					return sub.Score, true
				}
			}
		}
	}

	return 0, false
}

// fallbackScore derives a stable pseudo-score from the area text so an
// unknown area always colors the same way. The rolling hash wraps in
// 32 bits to keep scores identical to the platform the reference data
// was tuned against.
func fallbackScore(search string) int {
	var h int32
	for _, c := range search {
		h = h*31 + int32(c)
	}

	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v % fallbackRange)
}

// normalize scales raw table scores down into the fallback range.
// Table scores run into the thousands while fallback scores stay under
// 500; anything above the threshold is floor-divided so both paths
// land in a comparable 0-450 band.
func normalize(score int) int {
	if score > scaleThreshold {
		return score / scaleFactor
	}
	return score
}
