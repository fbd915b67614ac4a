package repositories

import (
	"fmt"
	"testing"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestSupplierRepository(t *testing.T) {
	suite.Run(t, new(SupplierRepositorySuite))
}

type SupplierRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo SupplierRepositoryInterface
}

func (s *SupplierRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewSupplierRepository(s.db.DB)
}

func (s *SupplierRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *SupplierRepositorySuite) TestCreate() {
	supplier := &models.Supplier{
		Name:    "Acme Supplies",
		Email:   "orders@acme.example.com",
		Phone:   "+1-555-0100",
		Address: "12 Industrial Way",
	}

	err := s.repo.Create(supplier)
	s.NoError(err)
	s.NotEqual(uuid.Nil, supplier.ID)
	s.NotZero(supplier.CreatedAt)
}

func (s *SupplierRepositorySuite) TestCreate_DuplicateName() {
	s.Require().NoError(s.repo.Create(&models.Supplier{Name: "Acme Supplies"}))

	err := s.repo.Create(&models.Supplier{Name: "Acme Supplies"})
	s.Equal(ErrSupplierAlreadyExists, err)
}

func (s *SupplierRepositorySuite) TestGetByID() {
	supplier := &models.Supplier{Name: "Globex Trading"}
	s.Require().NoError(s.repo.Create(supplier))

	found, err := s.repo.GetByID(supplier.ID)
	s.NoError(err)
	s.Equal("Globex Trading", found.Name)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrSupplierNotFound)
}

func (s *SupplierRepositorySuite) TestGetByName_CaseInsensitive() {
	supplier := &models.Supplier{Name: "Globex Trading"}
	s.Require().NoError(s.repo.Create(supplier))

	found, err := s.repo.GetByName("globex trading")
	s.NoError(err)
	s.Equal(supplier.ID, found.ID)

	_, err = s.repo.GetByName("Initech Ltd")
	s.ErrorIs(err, ErrSupplierNotFound)
}

func (s *SupplierRepositorySuite) TestGetAll_Pagination() {
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.repo.Create(&models.Supplier{Name: fmt.Sprintf("Supplier %d", i)}))
	}

	page, total, err := s.repo.GetAll(0, 3)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(page, 3)

	rest, total, err := s.repo.GetAll(3, 3)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(rest, 2)
}

func (s *SupplierRepositorySuite) TestUpdate() {
	supplier := &models.Supplier{Name: "Globex Trading"}
	s.Require().NoError(s.repo.Create(supplier))

	supplier.Phone = "+1-555-0199"
	supplier.Address = "48 Harbor Road"
	s.NoError(s.repo.Update(supplier))

	found, err := s.repo.GetByID(supplier.ID)
	s.NoError(err)
	s.Equal("+1-555-0199", found.Phone)
	s.Equal("48 Harbor Road", found.Address)
}

func (s *SupplierRepositorySuite) TestDelete() {
	supplier := &models.Supplier{Name: "Globex Trading"}
	s.Require().NoError(s.repo.Create(supplier))

	s.NoError(s.repo.Delete(supplier.ID))
	s.ErrorIs(s.repo.Delete(supplier.ID), ErrSupplierNotFound)
}

func (s *SupplierRepositorySuite) TestCountTransactions() {
	supplier := database.CreateTestSupplier(s.T(), s.db, "Acme Supplies")
	category := database.CreateTestCategory(s.T(), s.db, "Electronics")
	product := database.CreateTestProduct(s.T(), s.db, "Laptop Pro", category.ID, 10)

	txRepo := NewTransactionRepository(s.db.DB)
	for i := 0; i < 2; i++ {
		tx := &models.Transaction{
			ProductID:  product.ID,
			SupplierID: supplier.ID,
			Type:       models.TransactionTypePurchase,
			Quantity:   1,
			UnitPrice:  decimal.NewFromInt(10),
			TotalPrice: decimal.NewFromInt(10),
		}
		s.Require().NoError(txRepo.Create(tx))
	}

	count, err := s.repo.CountTransactions(supplier.ID)
	s.NoError(err)
	s.Equal(int64(2), count)

	count, err = s.repo.CountTransactions(uuid.New())
	s.NoError(err)
	s.Zero(count)
}
