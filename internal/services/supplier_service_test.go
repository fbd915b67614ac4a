package services

import (
	"log/slog"
	"testing"

	"inventory-backend/internal/dto"
	"inventory-backend/internal/models"
	"inventory-backend/internal/repositories"
	"inventory-backend/internal/repositories/repository_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type SupplierServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	supplierRepo *repository_mocks.MockSupplierRepositoryInterface
	service      SupplierServiceInterface
}

func (s *SupplierServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.supplierRepo = repository_mocks.NewMockSupplierRepositoryInterface(s.ctrl)
	s.service = NewSupplierService(s.supplierRepo, slog.Default())
}

func (s *SupplierServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestSupplierServiceSuite(t *testing.T) {
	suite.Run(t, new(SupplierServiceTestSuite))
}

func (s *SupplierServiceTestSuite) TestCreate() {
	req := &dto.CreateSupplierRequest{
		Name:  gofakeit.Company(),
		Email: gofakeit.Email(),
		Phone: gofakeit.Phone(),
	}

	s.supplierRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	supplier, err := s.service.Create(req)
	s.NoError(err)
	s.Equal(req.Name, supplier.Name)
	s.Equal(req.Email, supplier.Email)
}

func (s *SupplierServiceTestSuite) TestCreate_DuplicateName() {
	req := &dto.CreateSupplierRequest{Name: "Acme Supplies"}

	s.supplierRepo.EXPECT().Create(gomock.Any()).
		Return(repositories.ErrSupplierAlreadyExists).Times(1)

	supplier, err := s.service.Create(req)
	s.Equal(repositories.ErrSupplierAlreadyExists, err)
	s.Nil(supplier)
}

func (s *SupplierServiceTestSuite) TestUpdate() {
	id := uuid.New()
	existing := &models.Supplier{ID: id, Name: "Acme Supplies"}
	req := &dto.UpdateSupplierRequest{Name: "Acme Wholesale", Email: "sales@acme.example.com"}

	s.supplierRepo.EXPECT().GetByID(id).Return(existing, nil).Times(1)
	s.supplierRepo.EXPECT().Update(existing).Return(nil).Times(1)

	supplier, err := s.service.Update(id, req)
	s.NoError(err)
	s.Equal("Acme Wholesale", supplier.Name)
	s.Equal("sales@acme.example.com", supplier.Email)
}

func (s *SupplierServiceTestSuite) TestDelete() {
	id := uuid.New()

	s.supplierRepo.EXPECT().CountTransactions(id).Return(int64(0), nil).Times(1)
	s.supplierRepo.EXPECT().Delete(id).Return(nil).Times(1)

	s.NoError(s.service.Delete(id))
}

func (s *SupplierServiceTestSuite) TestDelete_SupplierInUse() {
	id := uuid.New()

	s.supplierRepo.EXPECT().CountTransactions(id).Return(int64(2), nil).Times(1)

	err := s.service.Delete(id)
	s.Equal(ErrSupplierInUse, err)
}

func (s *SupplierServiceTestSuite) TestGetAll() {
	suppliers := []models.Supplier{{Name: "Acme Supplies"}}

	s.supplierRepo.EXPECT().GetAll(0, 20).Return(suppliers, int64(1), nil).Times(1)

	result, total, err := s.service.GetAll(0, 20)
	s.NoError(err)
	s.Equal(int64(1), total)
	s.Len(result, 1)
}
