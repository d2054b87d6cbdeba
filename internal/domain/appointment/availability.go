package appointment

type AvailabilityInput struct {
	ProfessionalID uint
	ServiceID      uint
	Date           string // YYYY-MM-DD
}

type AvailabilityResult struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}
