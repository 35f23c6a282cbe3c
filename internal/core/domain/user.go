package domain

const (
	// UserTypeMonthly and UserTypeCredits are the two license models sold by
	// the platform. Unknown values from the backend are kept as-is for display.
	UserTypeMonthly = "Monthly License"
	UserTypeCredits = "Credits License"

	ActivateActive = "Active"

	// BlockSet / BlockClear is the canonical encoding written by this service.
	// Older rows may carry "Blocked"/"Not Blocked" instead; see Blocked().
	BlockSet   = "1"
	BlockClear = "0"
)

// User is a licensed account of the platform. All decimal values are carried
// as strings in the backend's "0.0" convention; see credit.go.
type User struct {
	ID         string `json:"id"`
	UID        string `json:"uid"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	EmailType  string `json:"email_type"`
	Phone      string `json:"phone"`
	Country    string `json:"country"`
	Credits    string `json:"credits"`
	UserType   string `json:"user_type"`
	Activate   string `json:"activate"`
	Block      string `json:"block"`
	ExpiryTime string `json:"expiry_time"`
	StartDate  string `json:"start_date"`
	HWID       string `json:"hwid"`
	Password   string `json:"-"`
}

// Blocked reports whether the account is blocked, accepting both backend
// encodings of the flag.
func (u User) Blocked() bool {
	return u.Block == BlockSet || u.Block == "Blocked"
}

// NormalizeUser applies the documented per-field defaults and coerces the
// credits string into the canonical "0.0" shape. The input is not mutated.
func NormalizeUser(u User) User {
	if u.Activate == "" {
		u.Activate = ActivateActive
	}
	if u.Block == "" {
		u.Block = "Not Blocked"
	}
	u.Credits = NormalizeCredit(u.Credits)
	if u.EmailType == "" {
		u.EmailType = "User"
	}
	if u.HWID == "" {
		u.HWID = "Null"
	}
	if u.UserType == "" {
		u.UserType = UserTypeMonthly
	}
	return u
}
