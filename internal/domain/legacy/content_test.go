package legacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTextContent(t *testing.T) {
	e := FooterElement{Type: ElementText, Content: []byte(`{"text":"© 2024 Atelier"}`)}

	content, err := e.DecodeContent()
	require.NoError(t, err)
	assert.Equal(t, ElementText, content.Type)
	require.NotNil(t, content.Text)
	assert.Equal(t, "© 2024 Atelier", content.Text.Text)
	assert.Nil(t, content.Contact)
	assert.Nil(t, content.Social)
}

func TestDecodeContactContent(t *testing.T) {
	e := FooterElement{
		Type:    ElementContact,
		Content: []byte(`{"email":"hello@example.com","phone":"+33 1 02 03","address":"12 rue des Arts"}`),
	}

	content, err := e.DecodeContent()
	require.NoError(t, err)
	require.NotNil(t, content.Contact)
	assert.Equal(t, "hello@example.com", content.Contact.Email)
	assert.Equal(t, "+33 1 02 03", content.Contact.Phone)
	assert.Equal(t, "12 rue des Arts", content.Contact.Address)
}

func TestDecodeSocialContent(t *testing.T) {
	e := FooterElement{
		Type:    ElementSocial,
		Content: []byte(`{"links":[{"platform":"instagram","url":"https://instagram.com/x"}]}`),
	}

	content, err := e.DecodeContent()
	require.NoError(t, err)
	require.NotNil(t, content.Social)
	require.Len(t, content.Social.Links, 1)
	assert.Equal(t, "instagram", content.Social.Links[0].Platform)
}

func TestDecodeEmptyBlob(t *testing.T) {
	e := FooterElement{Type: ElementText}

	content, err := e.DecodeContent()
	require.NoError(t, err)
	require.NotNil(t, content.Text)
	assert.Empty(t, content.Text.Text)
}

func TestDecodeUnknownType(t *testing.T) {
	e := FooterElement{Type: "banner", Content: []byte(`{}`)}

	_, err := e.DecodeContent()
	assert.Error(t, err)
}

func TestDecodeMalformedBlob(t *testing.T) {
	e := FooterElement{Type: ElementContact, Content: []byte(`not json`)}

	_, err := e.DecodeContent()
	assert.Error(t, err)
}
