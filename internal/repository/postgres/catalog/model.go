package catalog

type StoreDB struct {
	ID      int64
	Name    string
	Type    string
	Address string
	IsOpen  bool
}

type ProductDB struct {
	ID        int64
	StoreID   int64
	Name      string
	Price     int64
	Category  string
	Available bool
}

type ProductModifyDB struct {
	StoreID   *int64
	Name      *string
	Price     *int64
	Category  *string
	Available *bool
}
