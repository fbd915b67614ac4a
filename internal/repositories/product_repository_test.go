package repositories

import (
	"testing"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestProductRepository(t *testing.T) {
	suite.Run(t, new(ProductRepositorySuite))
}

type ProductRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     ProductRepositoryInterface
	category *models.Category
}

func (s *ProductRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewProductRepository(s.db.DB)
	s.category = database.CreateTestCategory(s.T(), s.db, "Electronics")
}

func (s *ProductRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ProductRepositorySuite) newProduct(name string) *models.Product {
	return &models.Product{
		Name:       name,
		CategoryID: s.category.ID,
		Price:      decimal.NewFromFloat(gofakeit.Price(1, 1000)),
		Stock:      gofakeit.Number(0, 50),
	}
}

func (s *ProductRepositorySuite) TestCreate() {
	product := s.newProduct("Laptop Pro")

	err := s.repo.Create(product)
	s.NoError(err)
	s.NotEqual(uuid.Nil, product.ID)
	s.NotEmpty(product.SKU)
}

func (s *ProductRepositorySuite) TestCreate_DuplicateSKU() {
	product := s.newProduct("Laptop Pro")
	product.SKU = "SKU-FIXED-01"
	s.Require().NoError(s.repo.Create(product))

	duplicate := s.newProduct("Other Laptop")
	duplicate.SKU = "SKU-FIXED-01"
	s.Equal(ErrProductAlreadyExists, s.repo.Create(duplicate))
}

func (s *ProductRepositorySuite) TestGetByID_PreloadsCategory() {
	product := s.newProduct("Laptop Pro")
	s.Require().NoError(s.repo.Create(product))

	found, err := s.repo.GetByID(product.ID)
	s.NoError(err)
	s.Equal("Electronics", found.Category.Name)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrProductNotFound)
}

func (s *ProductRepositorySuite) TestGetBySKU() {
	product := s.newProduct("Laptop Pro")
	product.SKU = "SKU-LP-15"
	s.Require().NoError(s.repo.Create(product))

	found, err := s.repo.GetBySKU("SKU-LP-15")
	s.NoError(err)
	s.Equal(product.ID, found.ID)

	_, err = s.repo.GetBySKU("SKU-MISSING")
	s.ErrorIs(err, ErrProductNotFound)
}

func (s *ProductRepositorySuite) TestGetAll_FilterByCategory() {
	other := database.CreateTestCategory(s.T(), s.db, "Office")

	s.Require().NoError(s.repo.Create(s.newProduct("Laptop Pro")))
	s.Require().NoError(s.repo.Create(s.newProduct("Mouse")))

	officeProduct := s.newProduct("Stapler")
	officeProduct.CategoryID = other.ID
	s.Require().NoError(s.repo.Create(officeProduct))

	all, total, err := s.repo.GetAll(uuid.Nil, 0, 10)
	s.NoError(err)
	s.Equal(int64(3), total)
	s.Len(all, 3)

	electronics, total, err := s.repo.GetAll(s.category.ID, 0, 10)
	s.NoError(err)
	s.Equal(int64(2), total)
	s.Len(electronics, 2)
}

func (s *ProductRepositorySuite) TestGetLowStock() {
	low := s.newProduct("Laptop Pro")
	low.Stock = 2
	s.Require().NoError(s.repo.Create(low))

	high := s.newProduct("Mouse")
	high.Stock = 40
	s.Require().NoError(s.repo.Create(high))

	products, err := s.repo.GetLowStock(5)
	s.NoError(err)
	s.Len(products, 1)
	s.Equal(low.ID, products[0].ID)
}

func (s *ProductRepositorySuite) TestUpdate() {
	product := s.newProduct("Laptop Pro")
	s.Require().NoError(s.repo.Create(product))

	product.Name = "Laptop Pro 15"
	s.NoError(s.repo.Update(product))

	found, err := s.repo.GetByID(product.ID)
	s.NoError(err)
	s.Equal("Laptop Pro 15", found.Name)
}

func (s *ProductRepositorySuite) TestDelete() {
	product := s.newProduct("Laptop Pro")
	s.Require().NoError(s.repo.Create(product))

	s.NoError(s.repo.Delete(product.ID))
	s.ErrorIs(s.repo.Delete(product.ID), ErrProductNotFound)
}
