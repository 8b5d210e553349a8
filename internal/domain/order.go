package domain

import "time"

// Customer is a snapshot of the customer record embedded into an order at
// creation time. It is owned by the order and never mutated afterwards;
// edits to the source customer record do not propagate here.
type Customer struct {
	ID    string
	Name  string
	Email string
	Phone string
}

// Product is one line item of an order. The board engine never interprets
// line items, it only carries them.
type Product struct {
	ID       string
	Name     string
	Quantity int
	Notes    string
}

// Artwork is an attached art file reference. Opaque to the engine.
type Artwork struct {
	ID         string
	FileName   string
	URL        string
	UploadedAt time.Time
}

// ArtworkActionLog records one action taken on an artwork (upload,
// approval request, customer reply). Append-only.
type ArtworkActionLog struct {
	ID        string
	ArtworkID string
	Action    string
	Actor     string
	Date      time.Time
}

// Order is the canonical order record held by the board engine.
type Order struct {
	ID          string
	Title       string
	Description string
	Status      Status
	Priority    Priority
	Customer    Customer
	Products    []Product
	Labels      []string
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Append-only trails. Entries are never rewritten or removed.
	History           []HistoryEntry
	Comments          []Comment
	Artworks          []Artwork
	ArtworkActionLogs []ArtworkActionLog
}

// Clone returns a copy of the order whose slices are independent of the
// receiver's, so appending to the copy never shows through older state
// snapshots.
func (o Order) Clone() Order {
	c := o
	c.Products = append([]Product(nil), o.Products...)
	c.Labels = append([]string(nil), o.Labels...)
	c.History = append([]HistoryEntry(nil), o.History...)
	c.Comments = append([]Comment(nil), o.Comments...)
	c.Artworks = append([]Artwork(nil), o.Artworks...)
	c.ArtworkActionLogs = append([]ArtworkActionLog(nil), o.ArtworkActionLogs...)
	if o.DueDate != nil {
		d := *o.DueDate
		c.DueDate = &d
	}
	return c
}
