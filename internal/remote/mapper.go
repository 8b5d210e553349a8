package remote

import (
	"fmt"
	"time"

	"github.com/serigraf/bancada/internal/domain"
)

// PlaceholderCustomer names orders whose payload came without a customer
// snapshot. The board still shows them; the record is corrected on the
// service side.
const PlaceholderCustomer = "Cliente não identificado"

// MapOrder normalizes a raw service payload into the canonical order
// record. It is pure and total: missing or malformed fields degrade to
// defaults instead of failing the load, so one bad order never takes the
// whole board down.
func MapOrder(r RemoteOrder) domain.Order {
	o := domain.Order{
		ID:          strOr(r.ID, ""),
		Title:       strOr(r.Title, ""),
		Description: strOr(r.Description, ""),
		Status:      domain.ParseStatus(strOr(r.Status, "")),
		Priority:    domain.ParsePriority(strOr(r.Priority, "")),
		Customer:    mapCustomer(r.Customer),
		Products:    mapProducts(r.Products),
		Labels:      append([]string{}, r.Labels...),
		DueDate:     parseDatePtr(r.DueDate),
		CreatedAt:   parseDate(r.CreatedAt),
		UpdatedAt:   parseDate(r.UpdatedAt),
		History:     mapHistory(r.History),
		Comments:    mapComments(r.Comments),
		Artworks:    mapArtworks(r.Artworks),
	}
	o.ArtworkActionLogs = mapActionLogs(r.ActionLogs)
	if o.UpdatedAt.Before(o.CreatedAt) {
		o.UpdatedAt = o.CreatedAt
	}
	return o
}

// MapOrders maps a full board payload, dropping nothing: malformed entries
// become placeholder-shaped orders rather than errors.
func MapOrders(rs []RemoteOrder) []domain.Order {
	orders := make([]domain.Order, 0, len(rs))
	for _, r := range rs {
		orders = append(orders, MapOrder(r))
	}
	return orders
}

func mapCustomer(c *RemoteCustomer) domain.Customer {
	if c == nil {
		return domain.Customer{Name: PlaceholderCustomer}
	}
	return domain.Customer{
		ID:    strOr(c.ID, ""),
		Name:  strOr(c.Name, PlaceholderCustomer),
		Email: strOr(c.Email, ""),
		Phone: strOr(c.Phone, ""),
	}
}

func mapProducts(ps []RemoteProduct) []domain.Product {
	out := make([]domain.Product, 0, len(ps))
	for _, p := range ps {
		out = append(out, domain.Product{
			ID:       strOr(p.ID, ""),
			Name:     strOr(p.Name, ""),
			Quantity: intOr(p.Quantity, 1),
			Notes:    strOr(p.Notes, ""),
		})
	}
	return out
}

func mapHistory(hs []RemoteHistoryEntry) []domain.HistoryEntry {
	out := make([]domain.HistoryEntry, 0, len(hs))
	for _, h := range hs {
		status := domain.ParseStatus(strOr(h.Status, ""))
		comment := strOr(h.Comment, strOr(h.Descricao, ""))
		if comment == "" {
			comment = fmt.Sprintf("Status changed to %s", status)
		}
		date := h.Date
		if date == nil {
			date = h.DataAlt
		}
		out = append(out, domain.HistoryEntry{
			ID:      strOr(h.ID, ""),
			Date:    parseDate(date),
			Status:  status,
			Actor:   strOr(h.Actor, ""),
			Comment: comment,
		})
	}
	return out
}

func mapComments(cs []RemoteComment) []domain.Comment {
	out := make([]domain.Comment, 0, len(cs))
	for _, c := range cs {
		out = append(out, domain.Comment{
			ID:    strOr(c.ID, ""),
			Date:  parseDate(c.Date),
			Actor: strOr(c.Actor, ""),
			Text:  strOr(c.Text, ""),
		})
	}
	return out
}

func mapArtworks(as []RemoteArtwork) []domain.Artwork {
	out := make([]domain.Artwork, 0, len(as))
	for _, a := range as {
		out = append(out, domain.Artwork{
			ID:         strOr(a.ID, ""),
			FileName:   strOr(a.FileName, ""),
			URL:        strOr(a.URL, ""),
			UploadedAt: parseDate(a.UploadedAt),
		})
	}
	return out
}

func mapActionLogs(ls []RemoteActionLog) []domain.ArtworkActionLog {
	out := make([]domain.ArtworkActionLog, 0, len(ls))
	for _, l := range ls {
		out = append(out, domain.ArtworkActionLog{
			ID:        strOr(l.ID, ""),
			ArtworkID: strOr(l.ArtworkID, ""),
			Action:    strOr(l.Action, ""),
			Actor:     strOr(l.Actor, ""),
			Date:      parseDate(l.Date),
		})
	}
	return out
}

func strOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func intOr(n *int, fallback int) int {
	if n == nil {
		return fallback
	}
	return *n
}

// parseDate accepts RFC 3339 timestamps or bare YYYY-MM-DD dates,
// degrading to the zero time.
func parseDate(s *string) time.Time {
	if s == nil || *s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		return t.UTC()
	}
	return time.Time{}
}

func parseDatePtr(s *string) *time.Time {
	t := parseDate(s)
	if t.IsZero() {
		return nil
	}
	return &t
}
