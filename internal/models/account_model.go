package models

type Account struct {
	ID          int64  `db:"id" json:"id"`
	CompanyName string `db:"company_name" json:"company_name"`
	Username    string `db:"username" json:"username"`
	Password    string `db:"password" json:"-"`
	IGToken     string `db:"ig_token" json:"-"`
	FBToken     string `db:"fb_token" json:"-"`
}

// Platform names a token column of an account.
type Platform string

const (
	PlatformInstagram Platform = "ig"
	PlatformFacebook  Platform = "fb"
)

// LinkedViaFacebook is written into ig_token when the Facebook OAuth flow
// stores a page token, so the Instagram channel shows as connected.
const LinkedViaFacebook = "linked via facebook"

func (p Platform) Valid() bool {
	return p == PlatformInstagram || p == PlatformFacebook
}

func (a *Account) Token(p Platform) string {
	switch p {
	case PlatformInstagram:
		return a.IGToken
	case PlatformFacebook:
		return a.FBToken
	}
	return ""
}

func (a *Account) SetToken(p Platform, token string) {
	switch p {
	case PlatformInstagram:
		a.IGToken = token
	case PlatformFacebook:
		a.FBToken = token
	}
}

// AccountColumns is the canonical column order of the customers table.
var AccountColumns = []string{"id", "company_name", "username", "password", "ig_token", "fb_token"}
