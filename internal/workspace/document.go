// Package workspace loads the document inventory the UI navigates: job
// description files stored as markdown with YAML front matter, grouped by
// agency and category. Content beyond the front matter is never parsed.
package workspace

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Status describes where a document sits in the review pipeline.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusInReview   Status = "in-review"
	StatusPublished  Status = "published"
	StatusProcessing Status = "processing"
)

// Document is one job description in the workspace.
type Document struct {
	ID        string
	Title     string
	Agency    string
	Category  string
	Status    Status
	Tags      []string
	SourceURL string
	Path      string
	UpdatedAt time.Time
}

type frontMatter struct {
	ID        string   `yaml:"id"`
	Title     string   `yaml:"title"`
	Agency    string   `yaml:"agency"`
	Category  string   `yaml:"category"`
	Status    string   `yaml:"status"`
	Tags      []string `yaml:"tags"`
	SourceURL string   `yaml:"source_url"`
}

var frontMatterDelim = []byte("---")

// ParseDocument reads front matter from a markdown file. Documents without
// front matter still load; title falls back to the file name and the id is
// derived deterministically from the path.
func ParseDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return Document{}, fmt.Errorf("stat document: %w", err)
	}

	var fm frontMatter
	if block, ok := frontMatterBlock(data); ok {
		if err := yaml.Unmarshal(block, &fm); err != nil {
			return Document{}, fmt.Errorf("parse front matter of %s: %w", filepath.Base(path), err)
		}
	}

	doc := Document{
		ID:        fm.ID,
		Title:     fm.Title,
		Agency:    fm.Agency,
		Category:  fm.Category,
		Status:    Status(fm.Status),
		Tags:      fm.Tags,
		SourceURL: fm.SourceURL,
		Path:      path,
		UpdatedAt: info.ModTime(),
	}
	if doc.ID == "" {
		doc.ID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(path)).String()
	}
	if doc.Title == "" {
		doc.Title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if doc.Agency == "" {
		doc.Agency = "Unassigned"
	}
	if doc.Status == "" {
		doc.Status = StatusDraft
	}
	return doc, nil
}

func frontMatterBlock(data []byte) ([]byte, bool) {
	trimmed := bytes.TrimLeft(data, "\xef\xbb\xbf")
	if !bytes.HasPrefix(trimmed, frontMatterDelim) {
		return nil, false
	}
	rest := trimmed[len(frontMatterDelim):]
	rest = bytes.TrimPrefix(rest, []byte("\r"))
	if !bytes.HasPrefix(rest, []byte("\n")) {
		return nil, false
	}
	rest = rest[1:]
	end := bytes.Index(rest, append([]byte("\n"), frontMatterDelim...))
	if end < 0 {
		return nil, false
	}
	return rest[:end], true
}

// Scan walks root and loads every markdown document beneath it, sorted by
// agency, category, then title. Unreadable files are skipped with the error
// collected into the returned slice.
func Scan(root string) ([]Document, []error) {
	var docs []Document
	var errs []error
	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return fs.SkipDir
			}
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		doc, perr := ParseDocument(path)
		if perr != nil {
			errs = append(errs, perr)
			return nil
		}
		docs = append(docs, doc)
		return nil
	})
	if walkErr != nil {
		errs = append(errs, walkErr)
	}
	SortDocuments(docs)
	return docs, errs
}

// SortDocuments orders documents by agency, category, then title.
func SortDocuments(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].Agency != docs[j].Agency {
			return docs[i].Agency < docs[j].Agency
		}
		if docs[i].Category != docs[j].Category {
			return docs[i].Category < docs[j].Category
		}
		return docs[i].Title < docs[j].Title
	})
}
