package domain

// ContentChangeEvent is one normalized notification of a mutation in the
// content store, reduced to the fields path computation needs. CategoryRef
// holds an unresolved reference id when the payload did not project the
// category slug.
type ContentChangeEvent struct {
	DocumentID   string
	DocumentType string
	Slug         string
	CategorySlug string
	CategoryRef  string
}

// WebhookCategory is the category shape inside a webhook document: either a
// projected slug or a bare reference id.
type WebhookCategory struct {
	Ref  string `json:"_ref,omitempty"`
	Slug *Slug  `json:"slug,omitempty"`
}

// WebhookDocument is one changed document as projected by the content store's
// webhook. Only identity fields are required; slug and category are present
// depending on the document type.
type WebhookDocument struct {
	ID       string           `json:"_id" validate:"required"`
	Type     string           `json:"_type" validate:"required"`
	Slug     *Slug            `json:"slug,omitempty"`
	Category *WebhookCategory `json:"category,omitempty"`
}

// WebhookMutation is one entry of the legacy mutations envelope.
type WebhookMutation struct {
	ID                string           `json:"_id"`
	Type              string           `json:"_type"`
	Create            *WebhookDocument `json:"create,omitempty"`
	CreateOrReplace   *WebhookDocument `json:"createOrReplace,omitempty"`
	CreateIfNotExists *WebhookDocument `json:"createIfNotExists,omitempty"`
	Patch             *struct {
		ID string `json:"id"`
	} `json:"patch,omitempty"`
	Delete *struct {
		ID string `json:"id"`
	} `json:"delete,omitempty"`
}

// WebhookPayload accepts both notification shapes the content store sends: a
// single projected document, or an envelope with a mutations array.
type WebhookPayload struct {
	WebhookDocument
	ProjectID string            `json:"projectId,omitempty"`
	Dataset   string            `json:"dataset,omitempty"`
	Mutations []WebhookMutation `json:"mutations,omitempty"`
}

// Document extracts the changed document carried by a mutation. Patch and
// delete entries carry identity only.
func (m WebhookMutation) Document() *WebhookDocument {
	switch {
	case m.Create != nil:
		return m.Create
	case m.CreateOrReplace != nil:
		return m.CreateOrReplace
	case m.CreateIfNotExists != nil:
		return m.CreateIfNotExists
	case m.Patch != nil:
		return &WebhookDocument{ID: m.Patch.ID, Type: m.Type}
	case m.Delete != nil:
		return &WebhookDocument{ID: m.Delete.ID, Type: m.Type}
	}
	return nil
}

// PageWarmMessage asks the warm worker to re-render purged pages into the
// cache.
type PageWarmMessage struct {
	DeliveryID string   `json:"delivery_id"`
	Paths      []string `json:"paths"`
}
