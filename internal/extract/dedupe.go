package extract

import (
	"sort"

	"github.com/obitwatch/obitwatch/internal/model"
)

// Dedupe merges candidate records from one or more pages into a single
// duplicate-free list sorted by date, newest first.
//
// Records sharing a (date, name) key collapse to the last one encountered
// in input order: a fuller mention on a later page supersedes a terser
// earlier one. Undated records sort after all dated ones and keep their
// input order among themselves, so repeated runs over identical input
// produce identical output.
func Dedupe(entries []model.Entry) []model.Entry {
	index := make(map[string]int, len(entries))
	merged := make([]model.Entry, 0, len(entries))

	for _, e := range entries {
		if i, ok := index[e.Key()]; ok {
			merged[i] = e
			continue
		}
		index[e.Key()] = len(merged)
		merged = append(merged, e)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		di, dj := merged[i].Date, merged[j].Date
		if di == nil || dj == nil {
			return dj == nil && di != nil
		}
		return di.After(*dj)
	})

	return merged
}
