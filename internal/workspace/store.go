package workspace

// Store holds the current document inventory for the UI. Callers receive
// defensive copies; the store is the single owner of its slice.
type Store interface {
	Documents() []Document
	SetDocuments([]Document)
	Find(id string) (Document, bool)
	Len() int
}

type store struct {
	docs []Document
}

// NewStore creates an empty document store.
func NewStore() Store {
	return &store{}
}

func (s *store) Documents() []Document {
	return cloneDocuments(s.docs)
}

func (s *store) SetDocuments(docs []Document) {
	s.docs = cloneDocuments(docs)
}

func (s *store) Find(id string) (Document, bool) {
	for _, doc := range s.docs {
		if doc.ID == id {
			return doc, true
		}
	}
	return Document{}, false
}

func (s *store) Len() int {
	return len(s.docs)
}

func cloneDocuments(docs []Document) []Document {
	if len(docs) == 0 {
		return nil
	}
	dup := make([]Document, len(docs))
	copy(dup, docs)
	return dup
}
