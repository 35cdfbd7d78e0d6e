package ui

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/docworks/docnav/internal/workspace"
)

// filterState holds the transient document search: a query string and the
// ranked matches across the whole workspace. While a filter is active the
// sidebar shows the flat match list instead of the tree; clearing it
// restores the tree untouched, expansion state included.
type filterState struct {
	query   string
	matches []workspace.Document
}

func newFilterState() *filterState {
	return &filterState{}
}

func (f *filterState) Active() bool {
	return strings.TrimSpace(f.query) != ""
}

func (f *filterState) Query() string {
	return f.query
}

func (f *filterState) Matches() []workspace.Document {
	return f.matches
}

func (f *filterState) Reset() {
	f.query = ""
	f.matches = nil
}

// apply recomputes matches for the current query. Fuzzy ranking over titles
// first, with a substring fallback across agency and tags.
func (f *filterState) apply(docs []workspace.Document) {
	trimmed := strings.TrimSpace(f.query)
	if trimmed == "" {
		f.matches = nil
		return
	}
	titles := make([]string, len(docs))
	for i, doc := range docs {
		titles[i] = doc.Title
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, titles)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})
	seen := make(map[int]struct{}, len(ranks))
	matches := make([]workspace.Document, 0, len(ranks))
	for _, rank := range ranks {
		if _, ok := seen[rank.OriginalIndex]; ok {
			continue
		}
		seen[rank.OriginalIndex] = struct{}{}
		matches = append(matches, docs[rank.OriginalIndex])
	}
	lower := strings.ToLower(trimmed)
	for i, doc := range docs {
		if _, ok := seen[i]; ok {
			continue
		}
		if strings.Contains(strings.ToLower(doc.Agency), lower) || tagsContain(doc.Tags, lower) {
			seen[i] = struct{}{}
			matches = append(matches, doc)
		}
	}
	f.matches = matches
}

func tagsContain(tags []string, lower string) bool {
	for _, tag := range tags {
		if strings.Contains(strings.ToLower(tag), lower) {
			return true
		}
	}
	return false
}

func (m *Model) appendToFilter(text string) {
	if text == "" {
		return
	}
	m.filter.query += text
	m.filter.apply(m.store.Documents())
	m.cursor = 0
}

func (m *Model) removeFilterRune() bool {
	runes := []rune(m.filter.query)
	if len(runes) == 0 {
		return false
	}
	m.filter.query = string(runes[:len(runes)-1])
	m.filter.apply(m.store.Documents())
	m.cursor = 0
	return true
}

func (m *Model) clearFilter() {
	m.filter.Reset()
	m.cursor = 0
}
