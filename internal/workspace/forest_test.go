package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForestGroupsByAgencyAndCategory(t *testing.T) {
	docs := []Document{
		{ID: "1", Title: "Intake Form", Agency: "Labor", Category: "Forms"},
		{ID: "2", Title: "Case Notes", Agency: "Labor", Category: "Notes"},
		{ID: "3", Title: "Budget", Agency: "Treasury", Category: "Forms"},
	}

	forest := Forest(docs)
	require.Len(t, forest, 2)

	labor := forest[0]
	assert.Equal(t, "agency:Labor", labor.ID)
	assert.Equal(t, "Labor", labor.Label)
	require.NotNil(t, labor.Badge)
	assert.Equal(t, "2", labor.Badge.Label)
	require.Len(t, labor.Children, 2)
	assert.Equal(t, "agency:Labor:Forms", labor.Children[0].ID)
	assert.Equal(t, "agency:Labor:Notes", labor.Children[1].ID)

	leaf := labor.Children[0].Children[0]
	assert.Equal(t, "1", leaf.ID)
	assert.Equal(t, "doc/1", leaf.Href)
	assert.False(t, leaf.IsGroup())
}

func TestForestEmptyCategoryFallsBackToGeneral(t *testing.T) {
	forest := Forest([]Document{{ID: "1", Title: "Memo", Agency: "Labor"}})
	require.Len(t, forest, 1)
	require.Len(t, forest[0].Children, 1)
	assert.Equal(t, "agency:Labor:General", forest[0].Children[0].ID)
	assert.Equal(t, "General", forest[0].Children[0].Label)
}

func TestForestStatusBadges(t *testing.T) {
	forest := Forest([]Document{
		{ID: "d", Title: "Draft", Agency: "A", Category: "C", Status: StatusDraft},
		{ID: "r", Title: "Review", Agency: "A", Category: "C", Status: StatusInReview},
		{ID: "p", Title: "Processing", Agency: "A", Category: "C", Status: StatusProcessing},
		{ID: "x", Title: "Published", Agency: "A", Category: "C", Status: StatusPublished},
	})
	leaves := forest[0].Children[0].Children
	require.Len(t, leaves, 4)

	require.NotNil(t, leaves[0].Badge)
	assert.Equal(t, "draft", leaves[0].Badge.Label)
	assert.Equal(t, "review", leaves[1].Badge.Label)
	assert.Equal(t, "processing", leaves[2].Badge.Label)
	assert.True(t, leaves[2].IsDisabled)
	assert.Nil(t, leaves[3].Badge)
	assert.False(t, leaves[3].IsDisabled)
}

func TestForestShortLabelOnlyForLongTitles(t *testing.T) {
	forest := Forest([]Document{
		{ID: "1", Title: "Short", Agency: "A", Category: "C"},
		{ID: "2", Title: "A Very Long Document Title Indeed", Agency: "A", Category: "C"},
	})
	leaves := forest[0].Children[0].Children
	assert.Empty(t, leaves[0].ShortLabel)
	assert.NotEmpty(t, leaves[1].ShortLabel)
	assert.Less(t, len([]rune(leaves[1].ShortLabel)), len([]rune(leaves[1].Label)))
}

func TestForestEmptyInput(t *testing.T) {
	assert.Empty(t, Forest(nil))
}
