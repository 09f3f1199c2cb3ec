package auth

// Account types recognized on registration. The tag is otherwise free-form;
// only "driver" carries meaning elsewhere in the system.
const (
	AccountTypeDriver   = "driver"
	AccountTypeCustomer = "customer"
)

// RegisterRequest contains user registration data supplied by callers.
type RegisterRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Birthdate   string `json:"birthdate"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Username    string `json:"username"`
	Password    string `json:"password"`
	AccountType string `json:"accountType"`
}

// LoginRequest contains user login credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
