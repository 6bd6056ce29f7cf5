package valueobjects

type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusSuspended
}

func (s Status) IsActive() bool {
	return s == StatusActive
}

func (s Status) String() string {
	return string(s)
}
