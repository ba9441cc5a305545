package dto

// ReviewInput is the student's review payload
type ReviewInput struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
