package model

// Review represents a user's review of a product. At most one review exists
// per (UserID, ProductID) pair; resubmitting replaces the previous one.
type Review struct {
	ID        int    `json:"id" db:"id"`
	UserID    int    `json:"userId" db:"user_id"`
	ProductID int    `json:"productId" db:"product_id"`
	Rate      int    `json:"rate" db:"rate"`
	Comment   string `json:"comment" db:"comment"`
}

// ReviewRequest is the payload for submitting a review.
type ReviewRequest struct {
	UserID    int    `json:"userId"`
	ProductID int    `json:"productId"`
	Rate      int    `json:"rate"`
	Comment   string `json:"comment"`
}
