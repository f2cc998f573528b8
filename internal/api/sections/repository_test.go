package sections

import (
	"testing"
	"time"

	"vitrine-app/database"
	"vitrine-app/internal/domain/decorations"
	"vitrine-app/internal/domain/sections"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // single in-memory database

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func mustCreateSection(t *testing.T, db *gorm.DB, s sections.Section) sections.Section {
	t.Helper()
	require.NoError(t, CreateSection(db, &s))
	return s
}

func TestListVisibleSectionsOrdering(t *testing.T) {
	db := newTestDB(t)

	// positions: 2, nil, 0, nil, 1 — nils must sort last, id as tiebreak
	s2 := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent, Position: intPtr(2)})
	n1 := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent})
	s0 := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent, Position: intPtr(0)})
	n2 := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent})
	s1 := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent, Position: intPtr(1)})

	// hidden sections never appear
	hidden := sections.Section{Type: sections.TypeContent, Position: intPtr(0)}
	hidden.IsVisible = false
	require.NoError(t, db.Create(&hidden).Error)

	rows, err := ListVisibleSections(db)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, s0.ID, rows[0].ID)
	assert.Equal(t, s1.ID, rows[1].ID)
	assert.Equal(t, s2.ID, rows[2].ID)

	// the two null-position sections come last, ordered by id
	nullIDs := []string{rows[3].ID, rows[4].ID}
	expected := []string{n1.ID, n2.ID}
	if n2.ID < n1.ID {
		expected = []string{n2.ID, n1.ID}
	}
	assert.Equal(t, expected, nullIDs)
}

func TestCreateSectionDefaults(t *testing.T) {
	db := newTestDB(t)

	s := mustCreateSection(t, db, sections.Section{
		Type:     sections.TypeContent,
		Title:    strPtr("T"),
		Position: intPtr(999),
	})

	assert.NotEmpty(t, s.ID)
	assert.Equal(t, "T", *s.Title)
	assert.Equal(t, sections.PaddingMedium, s.PaddingTop)
	assert.Equal(t, sections.PaddingMedium, s.PaddingBottom)
	assert.False(t, s.IsTransparent)
	assert.False(t, s.CreatedAt.IsZero())

	ok, err := DeleteSection(db, s.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := GetSectionByID(db, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetSectionByIDMissing(t *testing.T) {
	db := newTestDB(t)

	got, err := GetSectionByID(db, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdateSectionIdentityLaw(t *testing.T) {
	db := newTestDB(t)

	s := mustCreateSection(t, db, sections.Section{
		Type:     sections.TypeContent,
		Title:    strPtr("before"),
		BgColor:  strPtr("#abcdef"),
		Position: intPtr(3),
	})

	// empty update is a successful no-op returning the current row
	got, err := UpdateSection(db, s.ID, map[string]interface{}{})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "before", *got.Title)
	assert.Equal(t, "#abcdef", *got.BgColor)
	assert.Equal(t, 3, *got.Position)

	// unrecognized keys count as zero recognized keys
	got, err = UpdateSection(db, s.ID, map[string]interface{}{"no_such_column": "x"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "before", *got.Title)
}

func TestUpdateSectionFieldIsolation(t *testing.T) {
	db := newTestDB(t)

	s := mustCreateSection(t, db, sections.Section{
		Type:       sections.TypeContent,
		Title:      strPtr("before"),
		BgColor:    strPtr("#abcdef"),
		Layout:     strPtr("centered"),
		Position:   intPtr(7),
		TitleColor: strPtr("#111111"),
	})

	got, err := UpdateSection(db, s.ID, map[string]interface{}{"title": "X"})
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "X", *got.Title)
	assert.Equal(t, "#abcdef", *got.BgColor)
	assert.Equal(t, "centered", *got.Layout)
	assert.Equal(t, 7, *got.Position)
	assert.Equal(t, "#111111", *got.TitleColor)
	assert.Equal(t, sections.PaddingMedium, got.PaddingTop)
	assert.Equal(t, s.Type, got.Type)
	assert.True(t, got.IsVisible)
}

func TestUpdateSectionExplicitNull(t *testing.T) {
	db := newTestDB(t)

	s := mustCreateSection(t, db, sections.Section{
		Type:  sections.TypeContent,
		Title: strPtr("keep-or-null"),
	})

	// explicit null writes NULL
	got, err := UpdateSection(db, s.ID, map[string]interface{}{"title": nil})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Title)
}

func TestUpdateSectionMissingID(t *testing.T) {
	db := newTestDB(t)

	got, err := UpdateSection(db, "00000000-0000-0000-0000-000000000099", map[string]interface{}{"title": "X"})
	require.NoError(t, err)
	assert.Nil(t, got)

	var count int64
	require.NoError(t, db.Model(&sections.Section{}).Count(&count).Error)
	assert.Zero(t, count, "no row may be created by updating a missing id")
}

func TestDeleteSectionCascade(t *testing.T) {
	db := newTestDB(t)

	s := mustCreateSection(t, db, sections.Section{Type: sections.TypeCardGrid})

	content := sections.SectionContent{Title: strPtr("c")}
	require.NoError(t, AddSectionContent(db, s.ID, &content))

	card := sections.Card{Title: strPtr("card")}
	require.NoError(t, AddSectionCard(db, s.ID, &card))

	deco := decorations.Decoration{Name: "wave", Type: "divider", SVG: "<svg/>"}
	require.NoError(t, db.Create(&deco).Error)
	placement := sections.SectionDecoration{DecorationID: deco.ID, Position: "top-left"}
	require.NoError(t, AddSectionDecoration(db, s.ID, &placement))

	ok, err := DeleteSection(db, s.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := GetSectionByID(db, s.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var count int64
	db.Model(&sections.SectionContent{}).Where("section_id = ?", s.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&sections.Card{}).Where("section_id = ?", s.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&sections.SectionDecoration{}).Where("section_id = ?", s.ID).Count(&count)
	assert.Zero(t, count)

	// deleting again reports not found
	ok, err = DeleteSection(db, s.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecorationUpsertIdempotence(t *testing.T) {
	db := newTestDB(t)

	s := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent})
	deco := decorations.Decoration{Name: "blob", Type: "ornament", SVG: "<svg/>"}
	require.NoError(t, db.Create(&deco).Error)

	first := sections.SectionDecoration{DecorationID: deco.ID, Position: "top-left", Color: strPtr("#111")}
	require.NoError(t, AddSectionDecoration(db, s.ID, &first))

	second := sections.SectionDecoration{DecorationID: deco.ID, Position: "top-left", Color: strPtr("#222"), ZIndex: 5}
	require.NoError(t, AddSectionDecoration(db, s.ID, &second))

	var rows []sections.SectionDecoration
	require.NoError(t, db.Where("section_id = ? AND decoration_id = ? AND position = ?",
		s.ID, deco.ID, "top-left").Find(&rows).Error)
	require.Len(t, rows, 1, "re-adding the same placement must not duplicate")
	assert.Equal(t, "#222", *rows[0].Color)
	assert.Equal(t, 5, rows[0].ZIndex)

	// a different anchor position is a separate placement
	other := sections.SectionDecoration{DecorationID: deco.ID, Position: "bottom-right"}
	require.NoError(t, AddSectionDecoration(db, s.ID, &other))

	var count int64
	db.Model(&sections.SectionDecoration{}).Where("section_id = ?", s.ID).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestHydrationCompleteness(t *testing.T) {
	db := newTestDB(t)

	hero := mustCreateSection(t, db, sections.Section{Type: sections.TypeHero, Position: intPtr(0)})
	grid := mustCreateSection(t, db, sections.Section{Type: sections.TypeCardGrid, Position: intPtr(1)})
	content := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent, Position: intPtr(2)})

	rows, err := ListVisibleSections(db)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byID := map[string]sections.Section{}
	for _, r := range rows {
		byID[r.ID] = r
	}

	h := byID[hero.ID]
	assert.NotNil(t, h.Content, "content is always an array")
	assert.NotNil(t, h.Decorations, "decorations is always an array")
	assert.NotNil(t, h.NavLinks, "hero sections always carry nav_links")
	assert.Nil(t, h.Cards, "hero sections have no cards collection")

	g := byID[grid.ID]
	assert.NotNil(t, g.Content)
	assert.NotNil(t, g.Decorations)
	assert.NotNil(t, g.Cards, "card_grid sections always carry cards")
	assert.Nil(t, g.NavLinks)

	c := byID[content.ID]
	assert.NotNil(t, c.Content)
	assert.NotNil(t, c.Decorations)
	assert.Nil(t, c.Cards, "cards is type-conditional")
	assert.Nil(t, c.NavLinks)
}

func TestHydrationChildOrdering(t *testing.T) {
	db := newTestDB(t)

	s := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent})

	c2 := sections.SectionContent{Title: strPtr("second"), Position: 2}
	require.NoError(t, AddSectionContent(db, s.ID, &c2))
	c0 := sections.SectionContent{Title: strPtr("first"), Position: 0}
	require.NoError(t, AddSectionContent(db, s.ID, &c0))

	got, err := GetSectionByID(db, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Content, 2)
	assert.Equal(t, "first", *got.Content[0].Title)
	assert.Equal(t, "second", *got.Content[1].Title)
}

func TestAddSectionContentDefaults(t *testing.T) {
	db := newTestDB(t)

	s := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent})

	c := sections.SectionContent{Title: strPtr("x")}
	require.NoError(t, AddSectionContent(db, s.ID, &c))

	assert.Equal(t, sections.MediaSizeMedium, c.MediaSize)
	assert.Equal(t, sections.AlignLeft, c.TextAlign)
	assert.Equal(t, 0, c.Position)
	assert.Equal(t, s.ID, c.SectionID)
}

func TestUpdateSectionCardNullVsUndefined(t *testing.T) {
	db := newTestDB(t)

	s := mustCreateSection(t, db, sections.Section{Type: sections.TypeCardGrid})
	card := sections.Card{Title: strPtr("c"), EventDate: strPtr("2025-06-01")}
	require.NoError(t, AddSectionCard(db, s.ID, &card))

	// an empty update leaves event_date untouched
	got, err := UpdateSectionCard(db, card.ID, map[string]interface{}{})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.EventDate)
	assert.Equal(t, "2025-06-01", *got.EventDate)

	// an explicit null clears it
	got, err = UpdateSectionCard(db, card.ID, map[string]interface{}{"event_date": nil})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.EventDate)
}

func TestUpdateSectionCardBumpsUpdatedAt(t *testing.T) {
	db := newTestDB(t)

	s := mustCreateSection(t, db, sections.Section{Type: sections.TypeGallery})
	card := sections.Card{Title: strPtr("c")}
	require.NoError(t, AddSectionCard(db, s.ID, &card))
	before := card.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	got, err := UpdateSectionCard(db, card.ID, map[string]interface{}{"title": "renamed"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "renamed", *got.Title)
	assert.True(t, got.UpdatedAt.After(before), "updated_at must move when a field changes")
}

func TestUpdateSectionCardMissing(t *testing.T) {
	db := newTestDB(t)

	got, err := UpdateSectionCard(db, "00000000-0000-0000-0000-000000000001", map[string]interface{}{"title": "x"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestHeroNavLinks(t *testing.T) {
	db := newTestDB(t)

	hero := mustCreateSection(t, db, sections.Section{Type: sections.TypeHero})
	target := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent, Title: strPtr("about")})

	link := sections.HeroNavLink{TargetSectionID: &target.ID, Label: "About", IsVisible: true}
	require.NoError(t, AddHeroNavLink(db, hero.ID, &link))

	got, err := GetSectionByID(db, hero.ID)
	require.NoError(t, err)
	require.Len(t, got.NavLinks, 1)
	require.NotNil(t, got.NavLinks[0].TargetSectionID)
	assert.Equal(t, target.ID, *got.NavLinks[0].TargetSectionID)

	// deleting the target nulls the weak reference but keeps the link
	ok, err := DeleteSection(db, target.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err = GetSectionByID(db, hero.ID)
	require.NoError(t, err)
	require.Len(t, got.NavLinks, 1)
	assert.Nil(t, got.NavLinks[0].TargetSectionID)
}

func TestReorderAndRenumber(t *testing.T) {
	db := newTestDB(t)

	a := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent, Position: intPtr(0)})
	b := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent, Position: intPtr(1)})
	c := mustCreateSection(t, db, sections.Section{Type: sections.TypeContent, Position: intPtr(2)})

	require.NoError(t, ReorderSections(db, []string{c.ID, a.ID, b.ID}))

	rows, err := ListVisibleSections(db)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{c.ID, a.ID, b.ID}, []string{rows[0].ID, rows[1].ID, rows[2].ID})

	// deleting the middle section closes the gap
	ok, err := DeleteSection(db, a.ID)
	require.NoError(t, err)
	require.True(t, ok)

	rows, err = ListVisibleSections(db)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, *rows[0].Position)
	assert.Equal(t, 1, *rows[1].Position)
	assert.Equal(t, c.ID, rows[0].ID)
	assert.Equal(t, b.ID, rows[1].ID)
}
