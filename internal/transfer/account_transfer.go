package transfer

type AccountCreation struct {
	CompanyName string `json:"company_name" form:"company_name"`
	Username    string `json:"username" form:"username"`
	Password    string `json:"password" form:"password"`
}

type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

type TokenRequest struct {
	Token string `json:"token" form:"token"`
}

// AccountListing is what the agency sees in the customer list.
type AccountListing struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	Username    string `json:"username"`
}

// ClientOverview is the logged-in client's view of its own account.
type ClientOverview struct {
	ID                 int64  `json:"id"`
	CompanyName        string `json:"company_name"`
	InstagramConnected bool   `json:"instagram_connected"`
	FacebookConnected  bool   `json:"facebook_connected"`
}

type Dashboard struct {
	Customers int    `json:"customers"`
	Posts     int    `json:"posts"`
	Status    string `json:"status"`
}
