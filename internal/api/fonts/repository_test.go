package fonts

import (
	"testing"

	"vitrine-app/database"
	"vitrine-app/internal/domain/fonts"
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
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, database.Migrate(db))

	return db
}

func TestSystemFontsAreNotDeletable(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, database.SeedSystemFonts(db))

	var arial fonts.Font
	require.NoError(t, db.First(&arial, "name = ?", "Arial").Error)

	ok, err := DeleteFont(db, arial.ID)
	assert.ErrorIs(t, err, ErrSystemFont)
	assert.False(t, ok)

	var count int64
	db.Model(&fonts.Font{}).Where("id = ?", arial.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSeedSystemFontsIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, database.SeedSystemFonts(db))
	require.NoError(t, database.SeedSystemFonts(db))

	var count int64
	db.Model(&fonts.Font{}).Where("name = ?", "Arial").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestDeleteFontNullsWeakReferences(t *testing.T) {
	db := newTestDB(t)

	url := "https://fonts.googleapis.com/css2?family=Inter"
	font := fonts.Font{Name: "Inter", Source: fonts.SourceGoogle, FontFamily: "'Inter', sans-serif", URL: &url}
	require.NoError(t, CreateFont(db, &font))

	s := sections.Section{
		Type:          sections.TypeContent,
		IsVisible:     true,
		PaddingTop:    sections.PaddingMedium,
		PaddingBottom: sections.PaddingMedium,
		TitleFontID:   &font.ID,
	}
	require.NoError(t, db.Create(&s).Error)

	ok, err := DeleteFont(db, font.ID)
	require.NoError(t, err)
	require.True(t, ok)

	var got sections.Section
	require.NoError(t, db.First(&got, "id = ?", s.ID).Error)
	assert.Nil(t, got.TitleFontID, "the store nulls weak font references on delete")
}

func TestDeleteFontMissing(t *testing.T) {
	db := newTestDB(t)

	ok, err := DeleteFont(db, "00000000-0000-0000-0000-000000000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateFontPartial(t *testing.T) {
	db := newTestDB(t)

	font := fonts.Font{Name: "Custom", Source: fonts.SourceUpload, FontFamily: "'Custom'"}
	path := "/uploads/custom.woff2"
	font.FilePath = &path
	require.NoError(t, CreateFont(db, &font))

	got, err := UpdateFont(db, font.ID, map[string]interface{}{"name": "Custom Pro"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Custom Pro", got.Name)
	require.NotNil(t, got.FilePath)
	assert.Equal(t, path, *got.FilePath, "untouched fields keep their values")

	// explicit null clears the file path
	got, err = UpdateFont(db, font.ID, map[string]interface{}{"file_path": nil})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.FilePath)
}
