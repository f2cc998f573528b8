// Package migration transforms the legacy blocks/cards schema into the
// sections v2 schema. It is run manually, out-of-band, and is idempotent
// only by convention: the legacy tables are left untouched, so re-running it
// duplicates sections.
package migration

import (
	"vitrine-app/internal/domain/legacy"
	"vitrine-app/internal/domain/sections"

	"gorm.io/gorm"
)

const (
	layoutImageLeft = "image_left"
	layoutCentered  = "centered"
)

// RunLegacyMigration converts every legacy block into a section and re-homes
// its cards. Returns the number of sections created. Everything runs in one
// transaction so a failed run leaves nothing half-migrated.
func RunLegacyMigration(db *gorm.DB) (int, error) {
	created := 0

	err := db.Transaction(func(tx *gorm.DB) error {
		var blocks []legacy.Block
		if err := tx.Order("position ASC, id ASC").Find(&blocks).Error; err != nil {
			return err
		}

		for _, b := range blocks {
			var cards []legacy.Card
			if err := tx.Where("block_id = ?", b.ID).
				Order("position ASC, id ASC").
				Find(&cards).Error; err != nil {
				return err
			}

			sectionType, layout := targetTypeFor(b, len(cards))

			position := b.Position
			s := sections.Section{
				Type:          sectionType,
				Title:         b.Title,
				Position:      &position,
				IsVisible:     true,
				BgColor:       b.BgColor,
				BgImage:       b.BgImage,
				IsTransparent: b.IsTransparent,
				Layout:        layout,
				PaddingTop:    sections.PaddingMedium,
				PaddingBottom: sections.PaddingMedium,
				CreatedAt:     b.CreatedAt,
			}
			if err := tx.Create(&s).Error; err != nil {
				return err
			}
			created++

			if err := rehomeCards(tx, &s, cards); err != nil {
				return err
			}
		}
		return nil
	})

	if err != nil {
		return 0, err
	}
	return created, nil
}

// targetTypeFor applies the fixed block→section rule table:
// header→hero, footer→footer; default blocks become a card_grid when they
// own more than 3 cards, a content section with image_left layout for
// exactly one card, and a centered content section otherwise.
func targetTypeFor(b legacy.Block, cardCount int) (string, *string) {
	switch b.Type {
	case legacy.BlockHeader:
		return sections.TypeHero, nil
	case legacy.BlockFooter:
		return sections.TypeFooter, nil
	}

	if cardCount > 3 {
		return sections.TypeCardGrid, nil
	}
	layout := layoutCentered
	if cardCount == 1 {
		layout = layoutImageLeft
	}
	return sections.TypeContent, &layout
}

// rehomeCards moves legacy cards into the table the new section type reads:
// cards_v2 for card grids, section_content for hero/content sections.
// Footer sections drop their cards; the old admin never attached any.
func rehomeCards(tx *gorm.DB, s *sections.Section, cards []legacy.Card) error {
	switch {
	case s.HasCards():
		for _, card := range cards {
			row := sections.Card{
				SectionID:   s.ID,
				Title:       card.Title,
				Description: card.Description,
				MediaURL:    card.ImageURL,
				MediaType:   mediaTypeFor(card),
				LinkURL:     card.LinkURL,
				Position:    card.Position,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
	case s.Type == sections.TypeContent || s.Type == sections.TypeHero:
		for _, card := range cards {
			row := sections.SectionContent{
				SectionID:   s.ID,
				Title:       card.Title,
				Description: card.Description,
				MediaURL:    card.ImageURL,
				MediaType:   mediaTypeFor(card),
				MediaSize:   mediaSizeFor(card.Template),
				TextAlign:   sections.AlignLeft,
				Position:    card.Position,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func mediaTypeFor(card legacy.Card) *string {
	if card.ImageURL == nil {
		return nil
	}
	t := sections.MediaImage
	if card.Template != nil && *card.Template == "video" {
		t = sections.MediaVideo
	}
	return &t
}

// mediaSizeFor translates the old template hints: media-led templates render
// larger in the new schema.
func mediaSizeFor(template *string) string {
	if template != nil && (*template == "photo" || *template == "video") {
		return sections.MediaSizeLarge
	}
	return sections.MediaSizeMedium
}
