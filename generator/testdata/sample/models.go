package sample

// Token is an OAuth-style credential pair used to exercise field
// accessor generation.
type Token struct {
	AccessToken  string `json:"access_token" fievar:"accessToken"`
	RefreshToken string `fievar:",trans=c Cc"`
	ExpiresIn    int64
	internal     string `fievar:"-"`
}

// Color exercises variant accessor generation over an iota enum.
type Color int

const (
	ColorRed     Color = iota // fievar:"trans=c|_"
	ColorSkyBlue              // fievar:"trans=c|_"
	ColorUnknown              // fievar:"-"
)

// Empty has no collectable fields and triggers a generation warning.
type Empty struct{}
