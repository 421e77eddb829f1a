package notion

import "encoding/json"

// RichText is one styled text run inside a block or title property.
// Only the plain text value matters for rendering.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// FileRef carries the URL of a hosted or external file.
type FileRef struct {
	URL string `json:"url"`
}

// BlockPayload holds the type-specific fields a block can carry. Fields that
// a given block type does not use stay at their zero value.
type BlockPayload struct {
	RichText []RichText `json:"rich_text"`
	Checked  bool       `json:"checked"`
	File     *FileRef   `json:"file"`
	External *FileRef   `json:"external"`
}

// Block is one unit of page content: a type tag plus the payload stored
// under a key named after the type.
type Block struct {
	ID      string
	Type    string
	Payload BlockPayload
}

// UnmarshalJSON decodes the block envelope and then the payload object keyed
// by the block's own type. Unknown types keep an empty payload.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID   string `json:"id"`
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.ID = raw.ID
	b.Type = raw.Type
	b.Payload = BlockPayload{}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	payload, ok := fields[raw.Type]
	if !ok {
		return nil
	}
	return json.Unmarshal(payload, &b.Payload)
}

// Text joins the plain text of all rich-text runs with single spaces.
// An empty run list yields an empty string.
func (b Block) Text() string {
	if len(b.Payload.RichText) == 0 {
		return ""
	}
	out := b.Payload.RichText[0].PlainText
	for _, r := range b.Payload.RichText[1:] {
		out += " " + r.PlainText
	}
	return out
}

// Page is a database row: an id plus its property map.
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

// Property carries the one property shape we read: a title run list.
type Property struct {
	Title []RichText `json:"title"`
}

// Title returns the plain text of the named title property, or fallback when
// the property is absent or empty.
func (p Page) Title(name, fallback string) string {
	prop, ok := p.Properties[name]
	if !ok || len(prop.Title) == 0 {
		return fallback
	}
	if t := prop.Title[0].PlainText; t != "" {
		return t
	}
	return fallback
}

// Icon is a page icon: an emoji or the URL of a hosted/external image.
// A zero Icon means the page has none.
type Icon struct {
	Kind  string // "emoji" or "url"
	Value string
}

// IsZero reports whether the page carries no icon.
func (i Icon) IsZero() bool {
	return i.Kind == ""
}
