package extract

import "FinGather/internal/domain/models"

// Resolve walks the alias list and returns the raw entries of the first alias
// that reports any values under a preferred unit kind, units checked in
// priority order within each alias. A missing concept is not an error: ok is
// false and the metric is simply absent.
func Resolve(gaap models.ConceptMap, aliases []string) ([]models.FactEntry, bool) {
	if gaap == nil {
		return nil, false
	}
	for _, alias := range aliases {
		concept, ok := gaap[alias]
		if !ok {
			continue
		}
		for _, unit := range unitPriority {
			if entries := concept.Units[unit]; len(entries) > 0 {
				return entries, true
			}
		}
	}
	return nil, false
}
