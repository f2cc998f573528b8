package sections

import (
	"vitrine-app/internal/domain/sections"

	"gorm.io/gorm"
)

// Render order of sections on the page: position ASC with NULLs last, id as
// a stable tiebreak.
const sectionOrder = "position ASC NULLS LAST, id ASC"

// ListVisibleSections returns every visible section in render order, fully
// hydrated. One query for the list, then one query per related collection
// per section; page sizes are a handful of rows, so the fan-out is fine.
func ListVisibleSections(db *gorm.DB) ([]sections.Section, error) {
	var rows []sections.Section
	if err := visibleSectionsQuery(db).Order(sectionOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		if err := hydrateSection(db, &rows[i]); err != nil {
			return nil, err
		}
	}
	return rows, nil
}

// ListSections returns all sections (hidden included) for the admin panel,
// in the same order, without child hydration.
func ListSections(db *gorm.DB) ([]sections.Section, error) {
	var rows []sections.Section
	if err := db.Order(sectionOrder).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// GetSectionByID returns the hydrated section, or (nil, nil) when absent.
func GetSectionByID(db *gorm.DB, id string) (*sections.Section, error) {
	var s sections.Section
	err := db.First(&s, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := hydrateSection(db, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// hydrateSection attaches child collections. Content and decorations are
// always non-nil arrays; nav links only exist on hero sections and cards
// only on card_grid/gallery sections, so other types keep those fields nil.
func hydrateSection(db *gorm.DB, s *sections.Section) error {
	s.Content = make([]sections.SectionContent, 0)
	if err := db.Where("section_id = ?", s.ID).
		Order("position ASC, id ASC").
		Find(&s.Content).Error; err != nil {
		return err
	}

	s.Decorations = make([]sections.SectionDecoration, 0)
	if err := db.Preload("Decoration").
		Where("section_id = ?", s.ID).
		Order("z_index ASC, id ASC").
		Find(&s.Decorations).Error; err != nil {
		return err
	}

	if s.Type == sections.TypeHero {
		s.NavLinks = make([]sections.HeroNavLink, 0)
		if err := db.Where("section_id = ?", s.ID).
			Order("position ASC, id ASC").
			Find(&s.NavLinks).Error; err != nil {
			return err
		}
	}

	if s.HasCards() {
		s.Cards = make([]sections.Card, 0)
		if err := db.Where("section_id = ?", s.ID).
			Order("position ASC, id ASC").
			Find(&s.Cards).Error; err != nil {
			return err
		}
	}

	return nil
}

// CreateSection inserts a new section. Type must already be set; padding and
// transparency defaults are applied here so the returned row matches what
// was stored.
func CreateSection(db *gorm.DB, s *sections.Section) error {
	if s.PaddingTop == "" {
		s.PaddingTop = sections.PaddingMedium
	}
	if s.PaddingBottom == "" {
		s.PaddingBottom = sections.PaddingMedium
	}
	return db.Create(s).Error
}

// UpdateSection applies a partial update: only keys present in fields are
// written, a key set to nil writes NULL, unknown keys are dropped. Zero
// recognized keys is a no-op that still returns the current row. Returns
// (nil, nil) when the id does not exist.
func UpdateSection(db *gorm.DB, id string, fields map[string]interface{}) (*sections.Section, error) {
	updates := filterColumns(fields, sectionColumns)
	if len(updates) > 0 {
		res := db.Model(&sections.Section{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	return GetSectionByID(db, id)
}

// DeleteSection removes the section and, through the store's foreign keys,
// every content/card/decoration/nav-link row it owns. Remaining sections are
// renumbered to close the gap.
func DeleteSection(db *gorm.DB, id string) (bool, error) {
	res := db.Delete(&sections.Section{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	if err := renumberSections(db); err != nil {
		return false, err
	}
	return true, nil
}

// renumberSections rewrites position to a dense 0..n-1 run preserving the
// current render order. The only place positions are rewritten in bulk;
// O(n) per call and intentionally so.
func renumberSections(db *gorm.DB) error {
	var rows []sections.Section
	if err := db.Order(sectionOrder).Find(&rows).Error; err != nil {
		return err
	}
	for i, s := range rows {
		if s.Position != nil && *s.Position == i {
			continue
		}
		if err := db.Model(&sections.Section{}).
			Where("id = ?", s.ID).
			Update("position", i).Error; err != nil {
			return err
		}
	}
	return nil
}

// ReorderSections assigns positions following the given id order.
func ReorderSections(db *gorm.DB, orderedIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&sections.Section{}).
				Where("id = ?", id).
				Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AddSectionContent inserts a content fragment with its defaults applied.
func AddSectionContent(db *gorm.DB, sectionID string, c *sections.SectionContent) error {
	c.SectionID = sectionID
	if c.MediaSize == "" {
		c.MediaSize = sections.MediaSizeMedium
	}
	if c.TextAlign == "" {
		c.TextAlign = sections.AlignLeft
	}
	return db.Create(c).Error
}

// UpdateSectionContent applies the same partial-update contract as
// UpdateSection to a content fragment.
func UpdateSectionContent(db *gorm.DB, id string, fields map[string]interface{}) (*sections.SectionContent, error) {
	updates := filterColumns(fields, contentColumns)
	if len(updates) > 0 {
		res := db.Model(&sections.SectionContent{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	var c sections.SectionContent
	err := db.First(&c, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func DeleteSectionContent(db *gorm.DB, id string) (bool, error) {
	res := db.Delete(&sections.SectionContent{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddSectionCard inserts a card; position defaults to 0.
func AddSectionCard(db *gorm.DB, sectionID string, card *sections.Card) error {
	card.SectionID = sectionID
	return db.Create(card).Error
}

// UpdateSectionCard applies a partial update to a card. GORM bumps
// updated_at whenever at least one field is written.
func UpdateSectionCard(db *gorm.DB, id string, fields map[string]interface{}) (*sections.Card, error) {
	updates := filterColumns(fields, cardColumns)
	if len(updates) > 0 {
		res := db.Model(&sections.Card{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	var card sections.Card
	err := db.First(&card, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &card, nil
}

func DeleteSectionCard(db *gorm.DB, id string) (bool, error) {
	res := db.Delete(&sections.Card{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddSectionDecoration upserts a decoration placement. The unique key is
// (section, decoration, position): inserting the same triple again
// overwrites color/opacity/scale/z-index instead of duplicating the row.
func AddSectionDecoration(db *gorm.DB, sectionID string, d *sections.SectionDecoration) error {
	d.SectionID = sectionID
	if d.Position == "" {
		d.Position = "top-left"
	}

	var existing sections.SectionDecoration
	err := db.First(&existing,
		"section_id = ? AND decoration_id = ? AND position = ?",
		sectionID, d.DecorationID, d.Position,
	).Error
	if err == gorm.ErrRecordNotFound {
		return db.Create(d).Error
	}
	if err != nil {
		return err
	}

	return db.Model(&sections.SectionDecoration{}).
		Where("id = ?", existing.ID).
		Updates(map[string]interface{}{
			"color":   d.Color,
			"opacity": d.Opacity,
			"scale":   d.Scale,
			"z_index": d.ZIndex,
		}).Error
}

func RemoveSectionDecoration(db *gorm.DB, sectionID, decorationID, position string) (bool, error) {
	res := db.Delete(&sections.SectionDecoration{},
		"section_id = ? AND decoration_id = ? AND position = ?",
		sectionID, decorationID, position,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// AddHeroNavLink inserts a nav link for a hero section.
func AddHeroNavLink(db *gorm.DB, sectionID string, l *sections.HeroNavLink) error {
	l.SectionID = sectionID
	return db.Create(l).Error
}

func UpdateHeroNavLink(db *gorm.DB, id string, fields map[string]interface{}) (*sections.HeroNavLink, error) {
	updates := filterColumns(fields, navLinkColumns)
	if len(updates) > 0 {
		res := db.Model(&sections.HeroNavLink{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, nil
		}
	}
	var l sections.HeroNavLink
	err := db.First(&l, "id = ?", id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func DeleteHeroNavLink(db *gorm.DB, id string) (bool, error) {
	res := db.Delete(&sections.HeroNavLink{}, "id = ?", id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
