package auction

type Status string

const (
	StatusActive  Status = "active"
	StatusSold    Status = "sold"
	StatusExpired Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

// Terminal statuses are never left again; an auction closes exactly once.
func (s Status) IsTerminal() bool {
	return s == StatusSold || s == StatusExpired
}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusSold, StatusExpired:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
