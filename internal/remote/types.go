package remote

// Wire shapes returned by the order service. Every field is optional: the
// service is loosely typed and older deployments omit or rename fields, so
// the mapper treats each one as possibly absent.

// RemoteOrder is the raw order payload.
type RemoteOrder struct {
	ID          *string              `json:"id"`
	Title       *string              `json:"title"`
	Description *string              `json:"description"`
	Status      *string              `json:"status"`
	Priority    *string              `json:"priority"`
	Customer    *RemoteCustomer      `json:"customer"`
	Products    []RemoteProduct      `json:"products"`
	Labels      []string             `json:"labels"`
	DueDate     *string              `json:"dueDate"`
	CreatedAt   *string              `json:"createdAt"`
	UpdatedAt   *string              `json:"updatedAt"`
	History     []RemoteHistoryEntry `json:"history"`
	Comments    []RemoteComment      `json:"comments"`
	Artworks    []RemoteArtwork      `json:"artworks"`
	ActionLogs  []RemoteActionLog    `json:"artworkActionLogs"`
}

// RemoteCustomer is the embedded customer snapshot.
type RemoteCustomer struct {
	ID    *string `json:"id"`
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// RemoteProduct is one raw line item.
type RemoteProduct struct {
	ID       *string `json:"id"`
	Name     *string `json:"name"`
	Quantity *int    `json:"quantity"`
	Notes    *string `json:"notes"`
}

// RemoteHistoryEntry is a raw audit record. Older payloads carry the date
// under "data" and the comment under "descricao"; both spellings are
// accepted.
type RemoteHistoryEntry struct {
	ID        *string `json:"id"`
	Date      *string `json:"date"`
	DataAlt   *string `json:"data"`
	Status    *string `json:"status"`
	Actor     *string `json:"actor"`
	Comment   *string `json:"comment"`
	Descricao *string `json:"descricao"`
}

// RemoteComment is a raw order note.
type RemoteComment struct {
	ID    *string `json:"id"`
	Date  *string `json:"date"`
	Actor *string `json:"actor"`
	Text  *string `json:"text"`
}

// RemoteArtwork is a raw artwork attachment reference.
type RemoteArtwork struct {
	ID         *string `json:"id"`
	FileName   *string `json:"fileName"`
	URL        *string `json:"url"`
	UploadedAt *string `json:"uploadedAt"`
}

// RemoteActionLog is a raw artwork audit record.
type RemoteActionLog struct {
	ID        *string `json:"id"`
	ArtworkID *string `json:"artworkId"`
	Action    *string `json:"action"`
	Actor     *string `json:"actor"`
	Date      *string `json:"date"`
}
