package transfer

import "strings"

type PostCreation struct {
	CustomerID int64
	Caption    string
	MediaName  string
	Date       string
	Time       string
}

// PostListing is a post joined with the owning company's name. CompanyName
// stays empty when the customer id points nowhere.
type PostListing struct {
	ID          int64  `json:"id"`
	CustomerID  int64  `json:"customer_id"`
	CompanyName string `json:"company_name"`
	Caption     string `json:"caption"`
	MediaName   string `json:"media_name"`
	Status      string `json:"status"`
	Date        string `json:"date"`
}

// Incomplete reports whether a required field is missing.
func (p *PostCreation) Incomplete() bool {
	return p.CustomerID == 0 ||
		strings.TrimSpace(p.Caption) == "" ||
		strings.TrimSpace(p.MediaName) == "" ||
		strings.TrimSpace(p.Date) == ""
}
