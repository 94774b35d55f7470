package domain

// UserProfile is the shop owner's profile record.
type UserProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	ShopName string `json:"shopName"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar,omitempty"`
}

// PaymentMethods holds the payout configuration shown in settings.
type PaymentMethods struct {
	BkashNumber    string `json:"bkashNumber,omitempty"`
	NagadNumber    string `json:"nagadNumber,omitempty"`
	BankName       string `json:"bankName,omitempty"`
	AccountNumber  string `json:"accountNumber,omitempty"`
	AccountHolder  string `json:"accountHolder,omitempty"`
	CashOnDelivery bool   `json:"cashOnDelivery"`
}

// SocialAccount is a linked storefront social profile.
type SocialAccount struct {
	Platform string `json:"platform"`
	Handle   string `json:"handle"`
	URL      string `json:"url"`
	Active   bool   `json:"active"`
}
