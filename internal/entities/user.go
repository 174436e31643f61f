package entities

type User struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         UserRoleType
	Name         string
	Address      string
	// StoreID задан только для роли store.
	StoreID *int64
}

type UserRoleType string

const (
	RoleConsumer UserRoleType = "consumer"
	RoleStore    UserRoleType = "store"
	RoleDelivery UserRoleType = "delivery"
)

func (r UserRoleType) String() string {
	return string(r)
}

func (r UserRoleType) IsValid() bool {
	switch r {
	case RoleConsumer, RoleStore, RoleDelivery:
		return true
	default:
		return false
	}
}
