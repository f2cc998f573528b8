package page

import (
	"log"

	"vitrine-app/internal/domain/legacy"

	"gorm.io/gorm"
)

// AssembleLegacyHome builds the home-page view model from the old
// blocks/cards schema. Same degrade-to-empty rule as the v2 strategy.
func AssembleLegacyHome(db *gorm.DB) LegacyHomeView {
	view, err := assembleLegacyHome(db)
	if err != nil {
		log.Printf("legacy page assembly degraded to empty view: %v", err)
		return LegacyHomeView{Blocks: []LegacyBlockView{}}
	}
	return view
}

func assembleLegacyHome(db *gorm.DB) (LegacyHomeView, error) {
	var blocks []legacy.Block
	if err := db.Order("position ASC, id ASC").Find(&blocks).Error; err != nil {
		return LegacyHomeView{}, err
	}

	out := LegacyHomeView{Blocks: make([]LegacyBlockView, 0, len(blocks))}
	for _, b := range blocks {
		view := LegacyBlockView{Block: b}

		switch b.Type {
		case legacy.BlockFooter:
			elements, err := loadFooterElements(db, b.ID)
			if err != nil {
				return LegacyHomeView{}, err
			}
			view.Elements = elements
		case legacy.BlockHeader:
			// header blocks carry no cards or elements
		default:
			var cards []legacy.Card
			if err := db.Where("block_id = ?", b.ID).
				Order("position ASC, id ASC").
				Find(&cards).Error; err != nil {
				return LegacyHomeView{}, err
			}
			view.Cards = cards
		}

		out.Blocks = append(out.Blocks, view)
	}

	var pageRow legacy.Page
	err := db.First(&pageRow).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return LegacyHomeView{}, err
	}
	if err == nil {
		out.Settings = &pageRow
	}

	return out, nil
}

func loadFooterElements(db *gorm.DB, blockID uint) ([]FooterElementView, error) {
	var elements []legacy.FooterElement
	if err := db.Where("block_id = ?", blockID).
		Order("position ASC, id ASC").
		Find(&elements).Error; err != nil {
		return nil, err
	}

	out := make([]FooterElementView, 0, len(elements))
	for _, e := range elements {
		content, err := e.DecodeContent()
		if err != nil {
			// a single bad blob must not blank the whole page
			log.Printf("skipping footer element %d: %v", e.ID, err)
			continue
		}
		out = append(out, FooterElementView{
			ID:       e.ID,
			Type:     e.Type,
			Position: e.Position,
			Content:  content,
		})
	}
	return out, nil
}
