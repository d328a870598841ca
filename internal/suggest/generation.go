package suggest

import (
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/Veraticus/dex/internal/model"
)

// categorySource implements fuzzy.Source over category labels.
type categorySource []model.Category

func (c categorySource) Len() int {
	return len(c)
}

func (c categorySource) String(i int) string {
	return c[i].Generation + " " + c[i].Region
}

// Generation resolves query to a category. It accepts a 1-based position
// ("2"), an exact generation or region name ("Johto"), or a fuzzy
// abbreviation ("genii", "kan").
func Generation(query string, categories []model.Category) (model.Category, bool) {
	q := strings.TrimSpace(query)
	if q == "" || len(categories) == 0 {
		return model.Category{}, false
	}

	if n, err := strconv.Atoi(q); err == nil {
		if n >= 1 && n <= len(categories) {
			return categories[n-1], true
		}
		return model.Category{}, false
	}

	for _, c := range categories {
		if strings.EqualFold(c.Generation, q) || strings.EqualFold(c.Region, q) {
			return c, true
		}
	}

	matches := fuzzy.FindFrom(q, categorySource(categories))
	if len(matches) == 0 {
		return model.Category{}, false
	}
	return categories[matches[0].Index], true
}
