package models

type Post struct {
	ID         int64  `db:"id" json:"id"`
	CustomerID int64  `db:"customer_id" json:"customer_id"`
	Caption    string `db:"caption" json:"caption"`
	MediaName  string `db:"media_name" json:"media_name"`
	Status     string `db:"status" json:"status"`
	Date       string `db:"date" json:"date"`
}

const (
	PostStatusPlanned = "Geplant"
	PostStatusReady   = "Ready" // picked up by the external automation
)

// PostColumns is the canonical column order of the posts table.
var PostColumns = []string{"id", "customer_id", "caption", "media_name", "status", "date"}
