package remote

import "context"

// Service is the board engine's view of the remote order service. Every
// call can fail with a transport or authorization error; the engine does
// not retry here — recovery decisions live in the synchronization layer.
type Service interface {
	// ListBoardOrders fetches every order visible on the board.
	ListBoardOrders(ctx context.Context) ([]RemoteOrder, error)

	// CreateOrder creates an order from a draft and returns the created
	// remote representation.
	CreateOrder(ctx context.Context, draft Draft) (RemoteOrder, error)

	// UpdateOrderStatus moves an order to a new status with an optional
	// free-text comment.
	UpdateOrderStatus(ctx context.Context, id, status, comment string) error

	// IsAuthenticated reports whether a session is available. Synchronous,
	// no network call.
	IsAuthenticated() bool
}

// Draft is the input for creating an order.
type Draft struct {
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Status      string      `json:"status,omitempty"`
	Priority    string      `json:"priority,omitempty"`
	CustomerID  string      `json:"customerId,omitempty"`
	Products    []DraftItem `json:"products,omitempty"`
	Labels      []string    `json:"labels,omitempty"`
	DueDate     string      `json:"dueDate,omitempty"`
}

// DraftItem is one line item of a draft.
type DraftItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}
