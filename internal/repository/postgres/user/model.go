package user

type UserDB struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	Name         string
	Address      string
	StoreID      *int64
}
