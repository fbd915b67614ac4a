package repositories

import (
	"testing"
	"time"

	"inventory-backend/internal/database"
	"inventory-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

func TestTransactionFilters(t *testing.T) {
	suite.Run(t, new(TransactionFiltersSuite))
}

// TransactionFiltersSuite evaluates filter predicates against a real
// database so the generated SQL is exercised, not just inspected.
type TransactionFiltersSuite struct {
	suite.Suite
	db   *database.DB
	repo TransactionRepositoryInterface
}

func (s *TransactionFiltersSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
}

func (s *TransactionFiltersSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// supplierByName reuses an existing supplier row when the name was seen
// before; supplier names are unique and fixtures share counterparties.
func (s *TransactionFiltersSuite) supplierByName(name string) *models.Supplier {
	s.T().Helper()

	var supplier models.Supplier
	err := s.db.Where("name = ?", name).First(&supplier).Error
	if err == nil {
		return &supplier
	}
	s.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	return database.CreateTestSupplier(s.T(), s.db, name)
}

func (s *TransactionFiltersSuite) createTransaction(productName, supplierName, description string, createdAt time.Time) *models.Transaction {
	category := database.CreateTestCategory(s.T(), s.db, "cat-"+uuid.New().String()[:8])
	product := database.CreateTestProduct(s.T(), s.db, productName, category.ID, 100)
	supplier := s.supplierByName(supplierName)

	tx := &models.Transaction{
		ProductID:   product.ID,
		SupplierID:  supplier.ID,
		Type:        models.TransactionTypePurchase,
		Quantity:    1,
		UnitPrice:   decimal.NewFromInt(10),
		TotalPrice:  decimal.NewFromInt(10),
		Description: description,
		CreatedAt:   createdAt,
	}
	s.Require().NoError(s.repo.Create(tx))
	return tx
}

func (s *TransactionFiltersSuite) matchingIDs(predicate TransactionPredicate) []uuid.UUID {
	transactions, _, err := s.repo.GetWithFilters(predicate, 0, 100)
	s.Require().NoError(err)

	ids := make([]uuid.UUID, len(transactions))
	for i, tx := range transactions {
		ids[i] = tx.ID
	}
	return ids
}

func (s *TransactionFiltersSuite) TestByFreeText_MatchesProductName() {
	now := time.Now()
	laptop := s.createTransaction("Laptop Pro", "Acme Supplies", "restock", now)
	s.createTransaction("Mouse", "Acme Supplies", "restock", now)

	ids := s.matchingIDs(ByFreeText("laptop"))

	s.Len(ids, 1)
	s.Equal(laptop.ID, ids[0])
}

func (s *TransactionFiltersSuite) TestByFreeText_MatchesSupplierName() {
	now := time.Now()
	match := s.createTransaction("Keyboard", "Globex Trading", "weekly order", now)
	s.createTransaction("Keyboard", "Initech Ltd", "weekly order", now)

	ids := s.matchingIDs(ByFreeText("globex"))

	s.Len(ids, 1)
	s.Equal(match.ID, ids[0])
}

func (s *TransactionFiltersSuite) TestByFreeText_MatchesDescription() {
	now := time.Now()
	match := s.createTransaction("Keyboard", "Acme Supplies", "Damaged in transit", now)
	s.createTransaction("Keyboard", "Acme Supplies", "regular restock", now)

	ids := s.matchingIDs(ByFreeText("DAMAGED"))

	s.Len(ids, 1)
	s.Equal(match.ID, ids[0])
}

func (s *TransactionFiltersSuite) TestByFreeText_CaseInsensitiveSubstring() {
	now := time.Now()
	s.createTransaction("UltraWide Monitor", "Acme Supplies", "", now)

	s.Len(s.matchingIDs(ByFreeText("trawide")), 1)
	s.Len(s.matchingIDs(ByFreeText("ULTRAWIDE")), 1)
	s.Len(s.matchingIDs(ByFreeText("curved")), 0)
}

func (s *TransactionFiltersSuite) TestByFreeText_EmptyTermMatchesAll() {
	now := time.Now()
	s.createTransaction("Laptop Pro", "Acme Supplies", "", now)
	s.createTransaction("Mouse", "Globex Trading", "", now)

	s.Len(s.matchingIDs(ByFreeText("")), 2)
	s.Len(s.matchingIDs(ByFreeText("   ")), 2)
}

func (s *TransactionFiltersSuite) TestByMonthAndYear_SelectsCalendarMonth() {
	march := s.createTransaction("Laptop Pro", "Acme Supplies", "",
		time.Date(2024, time.March, 15, 14, 30, 0, 0, time.UTC))
	s.createTransaction("Mouse", "Acme Supplies", "",
		time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC))

	predicate, err := ByMonthAndYear(3, 2024)
	s.Require().NoError(err)

	ids := s.matchingIDs(predicate)
	s.Len(ids, 1)
	s.Equal(march.ID, ids[0])
}

func (s *TransactionFiltersSuite) TestByMonthAndYear_IgnoresDayAndTime() {
	first := s.createTransaction("Laptop Pro", "Acme Supplies", "",
		time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	last := s.createTransaction("Mouse", "Acme Supplies", "",
		time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC))

	predicate, err := ByMonthAndYear(3, 2024)
	s.Require().NoError(err)

	ids := s.matchingIDs(predicate)
	s.Len(ids, 2)
	s.Contains(ids, first.ID)
	s.Contains(ids, last.ID)
}

func (s *TransactionFiltersSuite) TestByMonthAndYear_YearMustMatch() {
	s.createTransaction("Laptop Pro", "Acme Supplies", "",
		time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC))

	predicate, err := ByMonthAndYear(3, 2024)
	s.Require().NoError(err)

	s.Len(s.matchingIDs(predicate), 0)
}

func (s *TransactionFiltersSuite) TestByMonthAndYear_InvalidMonth() {
	for _, month := range []int{0, 13, -1, 100} {
		predicate, err := ByMonthAndYear(month, 2024)
		s.ErrorIs(err, ErrInvalidMonth, "month %d must be rejected", month)
		s.Nil(predicate)
	}
}

func (s *TransactionFiltersSuite) TestByMonthAndYear_BoundaryMonths() {
	december := s.createTransaction("Laptop Pro", "Acme Supplies", "",
		time.Date(2023, time.December, 31, 23, 0, 0, 0, time.UTC))
	january := s.createTransaction("Mouse", "Acme Supplies", "",
		time.Date(2024, time.January, 1, 1, 0, 0, 0, time.UTC))

	decPredicate, err := ByMonthAndYear(12, 2023)
	s.Require().NoError(err)
	ids := s.matchingIDs(decPredicate)
	s.Len(ids, 1)
	s.Equal(december.ID, ids[0])

	janPredicate, err := ByMonthAndYear(1, 2024)
	s.Require().NoError(err)
	ids = s.matchingIDs(janPredicate)
	s.Len(ids, 1)
	s.Equal(january.ID, ids[0])
}

func (s *TransactionFiltersSuite) TestBuildTransactionPredicate_FreeTextWins() {
	// Both modes supplied: the free-text term decides, the period is ignored
	laptop := s.createTransaction("Laptop Pro", "Acme Supplies", "",
		time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	s.createTransaction("Mouse", "Acme Supplies", "",
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))

	predicate, err := BuildTransactionPredicate(models.TransactionFilters{
		Search: "laptop",
		Month:  3,
		Year:   2024,
	})
	s.Require().NoError(err)

	ids := s.matchingIDs(predicate)
	s.Len(ids, 1)
	s.Equal(laptop.ID, ids[0])
}

func (s *TransactionFiltersSuite) TestBuildTransactionPredicate_PeriodMode() {
	march := s.createTransaction("Laptop Pro", "Acme Supplies", "",
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC))
	s.createTransaction("Mouse", "Acme Supplies", "",
		time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))

	predicate, err := BuildTransactionPredicate(models.TransactionFilters{Month: 3, Year: 2024})
	s.Require().NoError(err)

	ids := s.matchingIDs(predicate)
	s.Len(ids, 1)
	s.Equal(march.ID, ids[0])
}

func (s *TransactionFiltersSuite) TestBuildTransactionPredicate_NoCriteria() {
	s.createTransaction("Laptop Pro", "Acme Supplies", "", time.Now())
	s.createTransaction("Mouse", "Globex Trading", "", time.Now())

	predicate, err := BuildTransactionPredicate(models.TransactionFilters{})
	s.Require().NoError(err)
	s.Nil(predicate, "no criteria means no predicate at all")

	s.Len(s.matchingIDs(predicate), 2)
}

func (s *TransactionFiltersSuite) TestBuildTransactionPredicate_InvalidPeriod() {
	_, err := BuildTransactionPredicate(models.TransactionFilters{Month: 13, Year: 2024})
	s.ErrorIs(err, ErrInvalidMonth)
}
