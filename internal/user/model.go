package user

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
	RoleKitchen Role = "kitchen"
)

func (r Role) Valid() bool { return r == RoleAdmin || r == RoleCashier || r == RoleKitchen }

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Role         Role   `json:"role"`
	PasswordHash []byte `json:"-"`
}

// LoginRequest payload of login.
// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username" example:"cashier"`
	Password string `json:"password" example:"cashier123"`
	Role     Role   `json:"role"     example:"cashier"`
}

// LoginResponse carries the user and a bearer token for later calls.
// swagger:model LoginResponse
type LoginResponse struct {
	Success bool   `json:"success"`
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// Credential seeds one account.
type Credential struct {
	ID       int
	Username string
	Password string
	Role     Role
}
