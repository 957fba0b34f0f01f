package reservation

// Status values keep the Spanish names of the legacy portal; they are stored
// as-is and shown as-is in every client.
type Status string

const (
	StatusFija      Status = "fija"
	StatusPendiente Status = "pendiente"
	StatusAprobada  Status = "aprobada"
	StatusRechazada Status = "rechazada"
	StatusCancelada Status = "cancelada"
	StatusAnulada   Status = "anulada"
)

func (s Status) String() string {
	return string(s)
}

// IsVoid reports whether a reservation in this status no longer blocks the
// calendar.
func (s Status) IsVoid() bool {
	switch s {
	case StatusRechazada, StatusCancelada, StatusAnulada:
		return true
	default:
		return false
	}
}

type Kind string

const (
	KindFixed    Kind = "fixed"
	KindAdHoc    Kind = "adhoc"
	KindExchange Kind = "exchange"
)

func (k Kind) String() string {
	return string(k)
}

// Transition tables per kind. Fixed allocations never transition: they are
// regenerated from the share registry, not managed by hand. The legacy system
// accepted any status write; rejecting off-table moves is a deliberate
// tightening.
var transitions = map[Kind]map[Status][]Status{
	KindAdHoc: {
		StatusPendiente: {StatusAprobada, StatusRechazada, StatusCancelada},
	},
	KindExchange: {
		StatusPendiente: {StatusAprobada, StatusAnulada, StatusCancelada},
	},
}

func CanTransition(kind Kind, from, to Status) bool {
	for _, allowed := range transitions[kind][from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidStatuses lists the statuses a reservation of the given kind may hold.
func ValidStatuses(kind Kind) []Status {
	switch kind {
	case KindFixed:
		return []Status{StatusFija}
	case KindAdHoc:
		return []Status{StatusPendiente, StatusAprobada, StatusRechazada, StatusCancelada}
	case KindExchange:
		return []Status{StatusPendiente, StatusAprobada, StatusAnulada, StatusCancelada}
	default:
		return nil
	}
}

func IsValidStatus(kind Kind, s Status) bool {
	for _, v := range ValidStatuses(kind) {
		if v == s {
			return true
		}
	}
	return false
}
