package dto

// BookingRequest is the student's booking payload
type BookingRequest struct {
	MoveInDate string `json:"moveInDate"` // 2006-01-02
	Duration   int    `json:"duration"`   // months
	Message    string `json:"message"`
}

// BookingStatusUpdate is the owner's decision on a pending booking
type BookingStatusUpdate struct {
	Status    string `json:"status"`
	Note      string `json:"note"`
	VisitDate string `json:"visitDate"` // optional, 2006-01-02
}

// MonthlyBookingStat is one month of booking volume for the admin dashboard
type MonthlyBookingStat struct {
	Year    int   `json:"year"`
	Month   int   `json:"month"`
	Count   int64 `json:"count"`
	Revenue int64 `json:"revenue"`
}
