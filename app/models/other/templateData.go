package other

// UserForTemplate is the slimmed-down user shape templates receive.
// Password hashes and token material never reach the view layer.
type UserForTemplate struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	Role      string
	Approved  bool
}
