package database

import (
	"fmt"
	"log"
	"os"

	"vitrine-app/internal/domain/decorations"
	"vitrine-app/internal/domain/fonts"
	"vitrine-app/internal/domain/legacy"
	"vitrine-app/internal/domain/sections"
	"vitrine-app/internal/domain/settings"
	"vitrine-app/internal/domain/social"
	"vitrine-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	if err := SeedSystemFonts(DB); err != nil {
		log.Fatal("❌ Font seed error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}

// Migrate creates/updates all tables, including the legacy blocks schema the
// migration utility reads from.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// admin accounts
		&users.User{},

		// catalogs
		&fonts.Font{},
		&decorations.Decoration{},
		&social.SocialLink{},
		&settings.PageSettings{},

		// sections v2
		&sections.Section{},
		&sections.SectionContent{},
		&sections.Card{},
		&sections.SectionDecoration{},
		&sections.HeroNavLink{},

		// legacy (migration source, read-only)
		&legacy.Block{},
		&legacy.Card{},
		&legacy.FooterElement{},
		&legacy.Page{},
	)
}

// SeedSystemFonts inserts the built-in fonts once. System fonts are never
// deletable, so the seed only fills gaps by name.
func SeedSystemFonts(db *gorm.DB) error {
	defaults := []fonts.Font{
		{Name: "Arial", Source: fonts.SourceSystem, FontFamily: "Arial, Helvetica, sans-serif"},
		{Name: "Georgia", Source: fonts.SourceSystem, FontFamily: "Georgia, serif"},
		{Name: "Courier New", Source: fonts.SourceSystem, FontFamily: "'Courier New', monospace"},
	}
	for _, f := range defaults {
		var count int64
		if err := db.Model(&fonts.Font{}).Where("name = ?", f.Name).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		font := f
		if err := db.Create(&font).Error; err != nil {
			return err
		}
	}
	return nil
}
