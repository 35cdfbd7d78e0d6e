package workspace

import (
	"fmt"

	"github.com/docworks/docnav/internal/nav"
)

// Forest arranges documents into a navigation forest: one group per agency,
// a subgroup per category, a leaf per document. Agencies and categories take
// hierarchical ids (agency:<name>, agency:<name>:<category>) so expansion
// state stays stable across rescans; document leaves use the document id.
func Forest(docs []Document) []nav.Item {
	type categoryBucket struct {
		name string
		docs []Document
	}
	type agencyBucket struct {
		name       string
		categories []*categoryBucket
		index      map[string]*categoryBucket
	}

	var agencies []*agencyBucket
	index := make(map[string]*agencyBucket)
	for _, doc := range docs {
		ab, ok := index[doc.Agency]
		if !ok {
			ab = &agencyBucket{name: doc.Agency, index: make(map[string]*categoryBucket)}
			index[doc.Agency] = ab
			agencies = append(agencies, ab)
		}
		cat := doc.Category
		if cat == "" {
			cat = "General"
		}
		cb, ok := ab.index[cat]
		if !ok {
			cb = &categoryBucket{name: cat}
			ab.index[cat] = cb
			ab.categories = append(ab.categories, cb)
		}
		cb.docs = append(cb.docs, doc)
	}

	forest := make([]nav.Item, 0, len(agencies))
	for _, ab := range agencies {
		agencyID := "agency:" + ab.name
		children := make([]nav.Item, 0, len(ab.categories))
		total := 0
		for _, cb := range ab.categories {
			leaves := make([]nav.Item, 0, len(cb.docs))
			for _, doc := range cb.docs {
				leaves = append(leaves, documentItem(doc))
			}
			total += len(cb.docs)
			children = append(children, nav.Item{
				ID:       agencyID + ":" + cb.name,
				Label:    cb.name,
				Icon:     "▸",
				Children: leaves,
			})
		}
		forest = append(forest, nav.Item{
			ID:       agencyID,
			Label:    ab.name,
			Icon:     "◆",
			Badge:    &nav.Badge{Label: fmt.Sprintf("%d", total)},
			Children: children,
		})
	}
	return forest
}

func documentItem(doc Document) nav.Item {
	item := nav.Item{
		ID:         doc.ID,
		Label:      doc.Title,
		ShortLabel: shortTitle(doc.Title),
		Icon:       "·",
		Href:       "doc/" + doc.ID,
	}
	switch doc.Status {
	case StatusInReview:
		item.Badge = &nav.Badge{Label: "review"}
	case StatusProcessing:
		item.Badge = &nav.Badge{Label: "processing"}
		item.IsDisabled = true
	case StatusDraft:
		item.Badge = &nav.Badge{Label: "draft"}
	}
	return item
}

func shortTitle(title string) string {
	const max = 12
	runes := []rune(title)
	if len(runes) <= max {
		return ""
	}
	return string(runes[:max-1]) + "…"
}
