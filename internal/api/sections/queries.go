package sections

import (
	"vitrine-app/internal/domain/sections"

	"gorm.io/gorm"
)

func visibleSectionsQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&sections.Section{}).Where("is_visible = ?", true)
}

// filterColumns keeps only keys that name a real, updatable column. A key
// mapped to nil stays in (explicit NULL write); a key that is simply absent
// from fields never shows up here at all. That distinction carries the whole
// partial-update contract.
func filterColumns(fields map[string]interface{}, allowed map[string]bool) map[string]interface{} {
	out := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		if allowed[k] {
			out[k] = v
		}
	}
	return out
}

var sectionColumns = map[string]bool{
	"type":       true,
	"title":      true,
	"position":   true,
	"is_visible": true,

	"bg_color":       true,
	"bg_image":       true,
	"bg_video":       true,
	"youtube_id":     true,
	"is_transparent": true,

	"layout":         true,
	"padding_top":    true,
	"padding_bottom": true,

	"title_font_id":    true,
	"subtitle_font_id": true,
	"text_font_id":     true,

	"title_color":    true,
	"subtitle_color": true,
	"text_color":     true,
	"accent_color":   true,

	"border_radius": true,
	"shadow":        true,

	"logo_url":        true,
	"logo_width":      true,
	"logo_position":   true,
	"show_social":     true,
	"social_position": true,
	"social_size":     true,
	"social_color":    true,
	"show_nav":        true,
	"nav_position":    true,
	"nav_color":       true,
	"nav_hover_color": true,
	"is_sticky":       true,
}

var contentColumns = map[string]bool{
	"title":       true,
	"subtitle":    true,
	"description": true,
	"cta_label":   true,
	"cta_url":     true,
	"media_url":   true,
	"media_type":  true,
	"media_alt":   true,
	"media_size":  true,
	"text_color":  true,
	"text_align":  true,
	"bg_color":    true,
	"font_id":     true,
	"position":    true,
}

var cardColumns = map[string]bool{
	"title":       true,
	"description": true,
	"media_url":   true,
	"media_type":  true,
	"link_url":    true,
	"bg_color":    true,
	"text_color":  true,
	"event_date":  true,
	"position":    true,
}

var navLinkColumns = map[string]bool{
	"target_section_id": true,
	"label":             true,
	"position":          true,
	"is_visible":        true,
}
