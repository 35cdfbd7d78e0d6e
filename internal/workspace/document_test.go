package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseDocumentFrontMatter(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "analyst.md", `---
id: jd-1001
title: Program Analyst
agency: Department of Labor
category: Analysis
status: in-review
tags: [gs-11, remote]
source_url: https://example.gov/jobs/1001
---

# Program Analyst
`)

	doc, err := ParseDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "jd-1001", doc.ID)
	assert.Equal(t, "Program Analyst", doc.Title)
	assert.Equal(t, "Department of Labor", doc.Agency)
	assert.Equal(t, "Analysis", doc.Category)
	assert.Equal(t, StatusInReview, doc.Status)
	assert.Equal(t, []string{"gs-11", "remote"}, doc.Tags)
	assert.Equal(t, "https://example.gov/jobs/1001", doc.SourceURL)
	assert.False(t, doc.UpdatedAt.IsZero())
}

func TestParseDocumentWithoutFrontMatter(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "plain-notes.md", "just text, no metadata\n")

	doc, err := ParseDocument(path)
	require.NoError(t, err)
	assert.Equal(t, "plain-notes", doc.Title)
	assert.Equal(t, "Unassigned", doc.Agency)
	assert.Equal(t, StatusDraft, doc.Status)
	assert.NotEmpty(t, doc.ID)
}

func TestParseDocumentIDIsStableAcrossReads(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "stable.md", "no front matter\n")

	first, err := ParseDocument(path)
	require.NoError(t, err)
	second, err := ParseDocument(path)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestParseDocumentRejectsBadFrontMatter(t *testing.T) {
	dir := t.TempDir()
	path := writeDoc(t, dir, "broken.md", "---\ntitle: [unterminated\n---\n")

	_, err := ParseDocument(path)
	assert.Error(t, err)
}

func TestScanLoadsAndSortsDocuments(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "b.md", "---\ntitle: Beta\nagency: Treasury\n---\n")
	writeDoc(t, dir, "sub/a.md", "---\ntitle: Alpha\nagency: Labor\n---\n")
	writeDoc(t, dir, "ignored.txt", "not a document")
	writeDoc(t, dir, ".hidden/skip.md", "---\ntitle: Hidden\n---\n")

	docs, errs := Scan(dir)
	assert.Empty(t, errs)
	require.Len(t, docs, 2)
	assert.Equal(t, "Alpha", docs[0].Title)
	assert.Equal(t, "Beta", docs[1].Title)
}

func TestStoreClonesDocuments(t *testing.T) {
	store := NewStore()
	store.SetDocuments([]Document{{ID: "1", Title: "One"}})

	docs := store.Documents()
	docs[0].Title = "mutated"

	fresh, ok := store.Find("1")
	require.True(t, ok)
	assert.Equal(t, "One", fresh.Title)
	assert.Equal(t, 1, store.Len())
}

func TestStoreFindMissing(t *testing.T) {
	store := NewStore()
	_, ok := store.Find("nope")
	assert.False(t, ok)
}
