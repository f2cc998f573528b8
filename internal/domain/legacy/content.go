package legacy

import (
	"encoding/json"
	"fmt"
)

const (
	ElementText    = "text"
	ElementContact = "contact"
	ElementSocial  = "social"
)

type TextContent struct {
	Text string `json:"text"`
}

type ContactContent struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SocialEntry struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type SocialContent struct {
	Links []SocialEntry `json:"links"`
}

// ElementContent is the decoded form of a footer element's JSON blob.
// Exactly one variant is set, matching Type.
type ElementContent struct {
	Type    string          `json:"type"`
	Text    *TextContent    `json:"text,omitempty"`
	Contact *ContactContent `json:"contact,omitempty"`
	Social  *SocialContent  `json:"social,omitempty"`
}

// DecodeContent parses the raw content blob into its typed variant. The blob
// is decoded once here, at the repository boundary; nothing downstream sees
// raw JSON.
func (e FooterElement) DecodeContent() (ElementContent, error) {
	out := ElementContent{Type: e.Type}
	raw := e.Content
	if len(raw) == 0 {
		raw = []byte("{}")
	}

	switch e.Type {
	case ElementText:
		var v TextContent
		if err := json.Unmarshal(raw, &v); err != nil {
			return out, err
		}
		out.Text = &v
	case ElementContact:
		var v ContactContent
		if err := json.Unmarshal(raw, &v); err != nil {
			return out, err
		}
		out.Contact = &v
	case ElementSocial:
		var v SocialContent
		if err := json.Unmarshal(raw, &v); err != nil {
			return out, err
		}
		out.Social = &v
	default:
		return out, fmt.Errorf("unknown footer element type %q", e.Type)
	}
	return out, nil
}
