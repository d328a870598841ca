// Package suggest offers "did you mean" help for searches that match nothing
// and resolves loosely typed generation names.
package suggest

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/Veraticus/dex/internal/model"
)

// limit scales the accepted edit distance with the candidate length.
func limit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

type scored struct {
	name string
	dist int
}

// Names returns up to max entry names close to query, nearest first.
func Names(query string, entries []model.Entry, max int) []string {
	token := strings.ToLower(strings.TrimSpace(query))
	if token == "" || max <= 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(entries))
	var results []scored
	for _, e := range entries {
		cand := strings.ToLower(e.Name)
		if cand == "" {
			continue
		}
		if _, ok := seen[cand]; ok {
			continue
		}
		seen[cand] = struct{}{}

		dist := levenshtein.ComputeDistance(token, cand)
		if dist > limit(len(cand)) {
			continue
		}
		results = append(results, scored{name: e.Name, dist: dist})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].dist == results[j].dist {
			return results[i].name < results[j].name
		}
		return results[i].dist < results[j].dist
	})

	if len(results) > max {
		results = results[:max]
	}
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.name
	}
	return out
}
