package entity

// Status is the active/inactive flag shared by customers, shops and cakes.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid checks if the Status is a valid value.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Toggled returns the opposite status.
func (s Status) Toggled() Status {
	if s == StatusActive {
		return StatusInactive
	}

	return StatusActive
}
