package sections

import "vitrine-app/internal/domain/sections"

// ---------- requests

type CreateSectionRequest struct {
	Type      string  `json:"type" binding:"required"`
	Title     *string `json:"title"`
	Position  *int    `json:"position"`
	IsVisible *bool   `json:"is_visible"`

	BgColor       *string `json:"bg_color"`
	BgImage       *string `json:"bg_image"`
	BgVideo       *string `json:"bg_video"`
	YoutubeID     *string `json:"youtube_id"`
	IsTransparent bool    `json:"is_transparent"`

	Layout        *string `json:"layout"`
	PaddingTop    string  `json:"padding_top"`
	PaddingBottom string  `json:"padding_bottom"`

	TitleFontID    *string `json:"title_font_id"`
	SubtitleFontID *string `json:"subtitle_font_id"`
	TextFontID     *string `json:"text_font_id"`

	TitleColor    *string `json:"title_color"`
	SubtitleColor *string `json:"subtitle_color"`
	TextColor     *string `json:"text_color"`
	AccentColor   *string `json:"accent_color"`

	BorderRadius *string `json:"border_radius"`
	Shadow       *string `json:"shadow"`

	LogoURL        *string `json:"logo_url"`
	LogoWidth      *int    `json:"logo_width"`
	LogoPosition   *string `json:"logo_position"`
	ShowSocial     bool    `json:"show_social"`
	SocialPosition *string `json:"social_position"`
	SocialSize     *string `json:"social_size"`
	SocialColor    *string `json:"social_color"`
	ShowNav        bool    `json:"show_nav"`
	NavPosition    *string `json:"nav_position"`
	NavColor       *string `json:"nav_color"`
	NavHoverColor  *string `json:"nav_hover_color"`
	IsSticky       bool    `json:"is_sticky"`
}

func (r CreateSectionRequest) toModel() sections.Section {
	s := sections.Section{
		Type:      r.Type,
		Title:     r.Title,
		Position:  r.Position,
		IsVisible: true,

		BgColor:       r.BgColor,
		BgImage:       r.BgImage,
		BgVideo:       r.BgVideo,
		YoutubeID:     r.YoutubeID,
		IsTransparent: r.IsTransparent,

		Layout:        r.Layout,
		PaddingTop:    r.PaddingTop,
		PaddingBottom: r.PaddingBottom,

		TitleFontID:    r.TitleFontID,
		SubtitleFontID: r.SubtitleFontID,
		TextFontID:     r.TextFontID,

		TitleColor:    r.TitleColor,
		SubtitleColor: r.SubtitleColor,
		TextColor:     r.TextColor,
		AccentColor:   r.AccentColor,

		BorderRadius: r.BorderRadius,
		Shadow:       r.Shadow,

		LogoURL:        r.LogoURL,
		LogoWidth:      r.LogoWidth,
		LogoPosition:   r.LogoPosition,
		ShowSocial:     r.ShowSocial,
		SocialPosition: r.SocialPosition,
		SocialSize:     r.SocialSize,
		SocialColor:    r.SocialColor,
		ShowNav:        r.ShowNav,
		NavPosition:    r.NavPosition,
		NavColor:       r.NavColor,
		NavHoverColor:  r.NavHoverColor,
		IsSticky:       r.IsSticky,
	}
	if r.IsVisible != nil {
		s.IsVisible = *r.IsVisible
	}
	return s
}

type AddContentRequest struct {
	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	Description *string `json:"description"`

	CtaLabel *string `json:"cta_label"`
	CtaURL   *string `json:"cta_url"`

	MediaURL  *string `json:"media_url"`
	MediaType *string `json:"media_type"`
	MediaAlt  *string `json:"media_alt"`
	MediaSize string  `json:"media_size"`

	TextColor *string `json:"text_color"`
	TextAlign string  `json:"text_align"`
	BgColor   *string `json:"bg_color"`

	FontID   *string `json:"font_id"`
	Position int     `json:"position"`
}

func (r AddContentRequest) toModel() sections.SectionContent {
	return sections.SectionContent{
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Description: r.Description,
		CtaLabel:    r.CtaLabel,
		CtaURL:      r.CtaURL,
		MediaURL:    r.MediaURL,
		MediaType:   r.MediaType,
		MediaAlt:    r.MediaAlt,
		MediaSize:   r.MediaSize,
		TextColor:   r.TextColor,
		TextAlign:   r.TextAlign,
		BgColor:     r.BgColor,
		FontID:      r.FontID,
		Position:    r.Position,
	}
}

type AddCardRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	MediaURL    *string `json:"media_url"`
	MediaType   *string `json:"media_type"`
	LinkURL     *string `json:"link_url"`
	BgColor     *string `json:"bg_color"`
	TextColor   *string `json:"text_color"`
	EventDate   *string `json:"event_date"`
	Position    int     `json:"position"`
}

func (r AddCardRequest) toModel() sections.Card {
	return sections.Card{
		Title:       r.Title,
		Description: r.Description,
		MediaURL:    r.MediaURL,
		MediaType:   r.MediaType,
		LinkURL:     r.LinkURL,
		BgColor:     r.BgColor,
		TextColor:   r.TextColor,
		EventDate:   r.EventDate,
		Position:    r.Position,
	}
}

type AddDecorationRequest struct {
	DecorationID string   `json:"decoration_id" binding:"required"`
	Position     string   `json:"position"`
	Color        *string  `json:"color"`
	Opacity      *float64 `json:"opacity"`
	Scale        *float64 `json:"scale"`
	ZIndex       int      `json:"z_index"`
}

type RemoveDecorationRequest struct {
	DecorationID string `json:"decoration_id" binding:"required"`
	Position     string `json:"position" binding:"required"`
}

type AddNavLinkRequest struct {
	TargetSectionID *string `json:"target_section_id"`
	Label           string  `json:"label" binding:"required"`
	Position        int     `json:"position"`
	IsVisible       *bool   `json:"is_visible"`
}

type ReorderSectionsRequest struct {
	SectionIDs []string `json:"section_ids" binding:"required"` // ordered list
}
