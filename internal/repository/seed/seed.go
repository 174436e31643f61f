package seed

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"marketplace/internal/entities"
)

//go:embed seed.yaml
var defaultFixture []byte

var ErrInvalidFixture = errors.New("invalid seed fixture")

type Fixture struct {
	Users    []entities.User
	Stores   []entities.Store
	Products []entities.Product
}

type fileUser struct {
	ID       int64  `yaml:"id"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	Name     string `yaml:"name"`
	Address  string `yaml:"address"`
	StoreID  *int64 `yaml:"store_id"`
}

type fileStore struct {
	ID      int64  `yaml:"id"`
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Address string `yaml:"address"`
	IsOpen  bool   `yaml:"is_open"`
}

type fileProduct struct {
	ID        int64  `yaml:"id"`
	StoreID   int64  `yaml:"store_id"`
	Name      string `yaml:"name"`
	Price     int64  `yaml:"price"`
	Category  string `yaml:"category"`
	Available bool   `yaml:"available"`
}

type file struct {
	Users    []fileUser    `yaml:"users"`
	Stores   []fileStore   `yaml:"stores"`
	Products []fileProduct `yaml:"products"`
}

// Load читает фикстуру из path, а при пустом path берет встроенную.
func Load(path string) (*Fixture, error) {
	if path == "" {
		return Parse(defaultFixture)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse разбирает YAML и хэширует пароли пользователей.
func Parse(data []byte) (*Fixture, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed yaml: %w", err)
	}

	fixture := &Fixture{
		Users:    make([]entities.User, 0, len(f.Users)),
		Stores:   make([]entities.Store, 0, len(f.Stores)),
		Products: make([]entities.Product, 0, len(f.Products)),
	}

	stores := make(map[int64]struct{}, len(f.Stores))
	for _, s := range f.Stores {
		stores[s.ID] = struct{}{}
		fixture.Stores = append(fixture.Stores, entities.Store{
			ID:      s.ID,
			Name:    s.Name,
			Type:    entities.StoreType(s.Type),
			Address: s.Address,
			IsOpen:  s.IsOpen,
		})
	}

	for _, p := range f.Products {
		if _, ok := stores[p.StoreID]; !ok {
			return nil, fmt.Errorf("%w: product %d references unknown store %d", ErrInvalidFixture, p.ID, p.StoreID)
		}
		fixture.Products = append(fixture.Products, entities.Product{
			ID:        p.ID,
			StoreID:   p.StoreID,
			Name:      p.Name,
			Price:     p.Price,
			Category:  p.Category,
			Available: p.Available,
		})
	}

	for _, u := range f.Users {
		role := entities.UserRoleType(u.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: user %d has unknown role %q", ErrInvalidFixture, u.ID, u.Role)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for user %d: %w", u.ID, err)
		}

		fixture.Users = append(fixture.Users, entities.User{
			ID:           u.ID,
			Email:        u.Email,
			PasswordHash: string(hash),
			Role:         role,
			Name:         u.Name,
			Address:      u.Address,
			StoreID:      u.StoreID,
		})
	}

	return fixture, nil
}
