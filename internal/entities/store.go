package entities

type Store struct {
	ID      int64
	Name    string
	Type    StoreType
	Address string
	IsOpen  bool
}

type StoreType string

const (
	StoreRestaurant  StoreType = "restaurant"
	StorePharmacy    StoreType = "pharmacy"
	StoreSupermarket StoreType = "supermarket"
)

func (t StoreType) String() string {
	return string(t)
}

type Product struct {
	ID        int64
	StoreID   int64
	Name      string
	Price     int64
	Category  string
	Available bool
}

type ProductModify struct {
	StoreID   *int64
	Name      *string
	Price     *int64
	Category  *string
	Available *bool
}
