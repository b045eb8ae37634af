package domain

// ProductDraft is a single product record submitted for bulk import.
// Description is optional and stored as-is when present.
type ProductDraft struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	UserID      string  `json:"user_id,omitempty"`
}

// ImportResult aggregates a bulk import. Inserted+Failed always equals the
// number of submitted drafts; individual failures never abort the batch.
type ImportResult struct {
	Inserted int `json:"inserted"`
	Failed   int `json:"failed"`
}
