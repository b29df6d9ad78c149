package models

// Job is a posting owned by a company user.
type Job struct {
	ID          int64  `json:"id"`
	OwnerID     int64  `json:"owner_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Welfare     string `json:"welfare"`
	Contact     string `json:"contact"`
}

// JobListing is a posting joined with its owner's display name.
// OwnerFound is false when the owner row is missing; OwnerName is then empty.
type JobListing struct {
	Job        Job
	OwnerName  string
	OwnerFound bool
}
