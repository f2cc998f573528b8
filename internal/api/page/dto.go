package page

import (
	"vitrine-app/internal/domain/legacy"
	"vitrine-app/internal/domain/sections"
	"vitrine-app/internal/domain/settings"
	"vitrine-app/internal/domain/social"
)

// HomeView is the full payload the public renderer consumes. Sections and
// social links are never nil; a degraded page is an empty list, not an
// error.
type HomeView struct {
	Sections    []sections.Section     `json:"sections"`
	SocialLinks []social.SocialLink    `json:"social_links"`
	Settings    *settings.PageSettings `json:"settings,omitempty"`
}

// LegacyHomeView is the same payload built from the old blocks/cards schema,
// settings included: the legacy strategy reads only legacy tables.
type LegacyHomeView struct {
	Blocks   []LegacyBlockView `json:"blocks"`
	Settings *legacy.Page      `json:"settings,omitempty"`
}

type LegacyBlockView struct {
	legacy.Block
	Cards    []legacy.Card       `json:"cards,omitempty"`
	Elements []FooterElementView `json:"elements,omitempty"`
}

// FooterElementView carries the element with its content already decoded
// into the typed variant; the renderer never touches raw JSON.
type FooterElementView struct {
	ID       uint                  `json:"id"`
	Type     string                `json:"type"`
	Position int                   `json:"position"`
	Content  legacy.ElementContent `json:"content"`
}
