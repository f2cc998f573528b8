package page

import (
	"testing"

	"vitrine-app/database"
	"vitrine-app/internal/domain/legacy"
	"vitrine-app/internal/domain/sections"
	"vitrine-app/internal/domain/social"

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
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	return db
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestAssembleHome(t *testing.T) {
	db := newTestDB(t)

	hero := sections.Section{Type: sections.TypeHero, Position: intPtr(0), IsVisible: true, PaddingTop: "medium", PaddingBottom: "medium"}
	require.NoError(t, db.Create(&hero).Error)
	footer := sections.Section{Type: sections.TypeFooter, Position: intPtr(1), IsVisible: true, PaddingTop: "medium", PaddingBottom: "medium"}
	require.NoError(t, db.Create(&footer).Error)

	link := social.SocialLink{Platform: "instagram", URL: "https://instagram.com/x", IsVisible: true, Location: social.LocationFooter}
	require.NoError(t, db.Create(&link).Error)
	hiddenLink := social.SocialLink{Platform: "facebook", URL: "https://facebook.com/x", IsVisible: false, Location: social.LocationFooter}
	require.NoError(t, db.Create(&hiddenLink).Error)

	view := AssembleHome(db)

	require.Len(t, view.Sections, 2)
	assert.Equal(t, hero.ID, view.Sections[0].ID)
	assert.Equal(t, footer.ID, view.Sections[1].ID)
	assert.NotNil(t, view.Sections[0].Content)
	assert.NotNil(t, view.Sections[0].Decorations)

	require.Len(t, view.SocialLinks, 1)
	assert.Equal(t, "instagram", view.SocialLinks[0].Platform)

	require.NotNil(t, view.Settings)
	assert.Equal(t, "Vitrine", view.Settings.SiteTitle)
}

func TestAssembleHomeDegradesToEmpty(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Migrator().DropTable(&sections.Section{}))

	view := AssembleHome(db)

	require.NotNil(t, view.Sections)
	assert.Empty(t, view.Sections)
	require.NotNil(t, view.SocialLinks)
	assert.Empty(t, view.SocialLinks)
	assert.Nil(t, view.Settings)
}

func TestAssembleLegacyHome(t *testing.T) {
	db := newTestDB(t)

	header := legacy.Block{Type: legacy.BlockHeader, Position: 0}
	require.NoError(t, db.Create(&header).Error)

	middle := legacy.Block{Type: legacy.BlockDefault, Title: strPtr("Projects"), Position: 1}
	require.NoError(t, db.Create(&middle).Error)
	require.NoError(t, db.Create(&legacy.Card{BlockID: middle.ID, Title: strPtr("b"), Position: 1}).Error)
	require.NoError(t, db.Create(&legacy.Card{BlockID: middle.ID, Title: strPtr("a"), Position: 0}).Error)

	footer := legacy.Block{Type: legacy.BlockFooter, Position: 2}
	require.NoError(t, db.Create(&footer).Error)
	require.NoError(t, db.Create(&legacy.FooterElement{
		BlockID: footer.ID,
		Type:    legacy.ElementContact,
		Content: []byte(`{"email":"hello@example.com","phone":"123"}`),
	}).Error)
	// an undecodable element is skipped, not fatal
	require.NoError(t, db.Create(&legacy.FooterElement{
		BlockID:  footer.ID,
		Type:     "mystery",
		Content:  []byte(`{}`),
		Position: 1,
	}).Error)

	require.NoError(t, db.Create(&legacy.Page{Title: strPtr("Old Vitrine")}).Error)

	view := AssembleLegacyHome(db)

	require.Len(t, view.Blocks, 3)

	assert.Empty(t, view.Blocks[0].Cards, "header blocks carry no cards")

	require.Len(t, view.Blocks[1].Cards, 2)
	assert.Equal(t, "a", *view.Blocks[1].Cards[0].Title)
	assert.Equal(t, "b", *view.Blocks[1].Cards[1].Title)

	require.Len(t, view.Blocks[2].Elements, 1)
	element := view.Blocks[2].Elements[0]
	assert.Equal(t, legacy.ElementContact, element.Type)
	require.NotNil(t, element.Content.Contact)
	assert.Equal(t, "hello@example.com", element.Content.Contact.Email)

	require.NotNil(t, view.Settings)
	assert.Equal(t, "Old Vitrine", *view.Settings.Title)
}

func TestAssembleLegacyHomeDegradesToEmpty(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Migrator().DropTable(&legacy.Block{}))

	view := AssembleLegacyHome(db)

	require.NotNil(t, view.Blocks)
	assert.Empty(t, view.Blocks)
}
