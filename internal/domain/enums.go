package domain

// Status is one stage of the shop's order workflow. An order belongs to
// exactly one board column, the column whose id equals its status.
type Status string

const (
	StatusFazer     Status = "FAZER"     // queued for artwork
	StatusAjustes   Status = "AJUSTES"   // artwork needs adjustment
	StatusAprovacao Status = "APROVACAO" // waiting for customer approval
	StatusAprovado  Status = "APROVADO"  // approved, ready for production
	StatusProducao  Status = "PRODUCAO"  // on the press
	StatusEnviado   Status = "ENVIADO"   // shipped
)

// AllStatuses lists every workflow status in board column order.
var AllStatuses = []Status{
	StatusFazer,
	StatusAjustes,
	StatusAprovacao,
	StatusAprovado,
	StatusProducao,
	StatusEnviado,
}

var statusTitles = map[Status]string{
	StatusFazer:     "Fazer",
	StatusAjustes:   "Ajustes",
	StatusAprovacao: "Aprovação",
	StatusAprovado:  "Aprovado",
	StatusProducao:  "Produção",
	StatusEnviado:   "Enviado",
}

// Valid reports whether s is one of the known workflow statuses.
func (s Status) Valid() bool {
	_, ok := statusTitles[s]
	return ok
}

// Title returns the human-readable column title for the status.
func (s Status) Title() string {
	if t, ok := statusTitles[s]; ok {
		return t
	}
	return string(s)
}

// ParseStatus casts a raw string to a Status, falling back to StatusFazer
// for unknown or empty values. Remote payloads are not trusted to carry
// valid statuses.
func ParseStatus(raw string) Status {
	s := Status(raw)
	if s.Valid() {
		return s
	}
	return StatusFazer
}

// Priority marks how urgently an order should be worked.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityAlta   Priority = "alta"
)

// ParsePriority casts a raw string to a Priority, defaulting to normal.
func ParsePriority(raw string) Priority {
	if Priority(raw) == PriorityAlta {
		return PriorityAlta
	}
	return PriorityNormal
}
