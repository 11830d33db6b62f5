// Package storetest holds the behaviour every asset.Repository must share.
package storetest

import (
	"context"
	"testing"

	"github.com/goto/assetkeeper/core/asset"
	"github.com/goto/assetkeeper/internal/testutils"
	"github.com/stretchr/testify/suite"
)

// ContractSuite runs against a fresh, empty repository for every test.
type ContractSuite struct {
	suite.Suite
	NewRepository func(t *testing.T) asset.Repository

	ctx  context.Context
	repo asset.Repository
}

func (s *ContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.NewRepository(s.T())
}

func (s *ContractSuite) TearDownTest() {
	s.Require().NoError(s.repo.Close())
}

func strPtr(v string) *string { return &v }

func camera(id string) asset.Stored {
	return asset.Stored{
		ID:              id,
		Name:            "Camera " + id,
		Description:     strPtr("mirrorless body"),
		PurchaseDate:    strPtr("2020-05-01"),
		StorageLocation: "Shelf A",
	}
}

func loanOf(id string) asset.Loan {
	return asset.Loan{
		AssetID:       id,
		BorrowerName:  "Jane Doe",
		BorrowerEmail: "jane@example.com",
		State:         asset.StateRequested.String(),
		DateRequested: "2024-01-01",
		DueDate:       "2024-01-31",
		Comment:       strPtr("field trip"),
	}
}

func (s *ContractSuite) assertEqual(expected, actual interface{}) {
	s.T().Helper()
	testutils.AssertEqual(s.T(), expected, actual)
}

func (s *ContractSuite) TestListAssetsLeftJoinsLoans() {
	bare := asset.Stored{ID: "2", Name: "Tripod", StorageLocation: "Closet"}
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("10")))
	s.Require().NoError(s.repo.InsertAsset(s.ctx, bare))
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("A-100")))
	s.Require().NoError(s.repo.InsertLoan(s.ctx, loanOf("A-100")))

	got, err := s.repo.ListAssets(s.ctx)
	s.Require().NoError(err)

	loan := loanOf("A-100")
	s.assertEqual([]asset.Listing{
		{Asset: bare},
		{Asset: camera("10")},
		{Asset: camera("A-100"), Loan: &loan},
	}, got)
}

func (s *ContractSuite) TestListAssetsOrdersDecimalIdentifiersByValue() {
	for _, id := range []string{"B-1", "100", "007", "9", "A-100", "10", "1234567890123456789"} {
		s.Require().NoError(s.repo.InsertAsset(s.ctx, camera(id)))
	}

	got, err := s.repo.ListAssets(s.ctx)
	s.Require().NoError(err)

	ids := make([]string, 0, len(got))
	for _, l := range got {
		ids = append(ids, l.Asset.ID)
	}
	s.Equal([]string{"007", "9", "10", "100", "1234567890123456789", "A-100", "B-1"}, ids)
}

func (s *ContractSuite) TestListAssetsEmpty() {
	got, err := s.repo.ListAssets(s.ctx)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *ContractSuite) TestInsertAssetDuplicateKey() {
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("1")))

	err := s.repo.InsertAsset(s.ctx, camera("1"))
	s.ErrorIs(err, asset.ErrDuplicateKey)
}

func (s *ContractSuite) TestFindAsset() {
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("1")))

	got, err := s.repo.FindAsset(s.ctx, "1")
	s.Require().NoError(err)
	s.assertEqual(camera("1"), got)

	_, err = s.repo.FindAsset(s.ctx, "2")
	s.ErrorAs(err, &asset.NotFoundError{})
}

func (s *ContractSuite) TestLoanLifecycle() {
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("1")))

	got, err := s.repo.FindActiveLoan(s.ctx, "1")
	s.Require().NoError(err)
	s.Nil(got)

	s.Require().NoError(s.repo.InsertLoan(s.ctx, loanOf("1")))
	s.ErrorIs(s.repo.InsertLoan(s.ctx, loanOf("1")), asset.ErrDuplicateKey)

	s.Require().NoError(s.repo.UpdateLoanState(s.ctx, "1", asset.StateBorrowed))
	s.Require().NoError(s.repo.UpdateLoanDueDate(s.ctx, "1", asset.MustDate("2024-03-01")))

	got, err = s.repo.FindActiveLoan(s.ctx, "1")
	s.Require().NoError(err)
	want := loanOf("1")
	want.State = asset.StateBorrowed.String()
	want.DueDate = "2024-03-01"
	s.assertEqual(&want, got)

	s.Require().NoError(s.repo.DeleteLoan(s.ctx, "1"))
	got, err = s.repo.FindActiveLoan(s.ctx, "1")
	s.Require().NoError(err)
	s.Nil(got)

	s.ErrorAs(s.repo.DeleteLoan(s.ctx, "1"), &asset.NotFoundError{})
	s.ErrorAs(s.repo.UpdateLoanState(s.ctx, "1", asset.StateBorrowed), &asset.NotFoundError{})
	s.ErrorAs(s.repo.UpdateLoanDueDate(s.ctx, "1", asset.MustDate("2024-03-01")), &asset.NotFoundError{})
}

func (s *ContractSuite) TestLoanWithoutComment() {
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("1")))
	loan := loanOf("1")
	loan.Comment = nil
	s.Require().NoError(s.repo.InsertLoan(s.ctx, loan))

	got, err := s.repo.FindActiveLoan(s.ctx, "1")
	s.Require().NoError(err)
	s.assertEqual(&loan, got)
}

func (s *ContractSuite) TestInsertLoanForUnknownAsset() {
	err := s.repo.InsertLoan(s.ctx, loanOf("404"))
	s.ErrorAs(err, &asset.NotFoundError{})
}

func (s *ContractSuite) TestDeleteAssetPurgesLoan() {
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("1")))
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("2")))
	s.Require().NoError(s.repo.InsertLoan(s.ctx, loanOf("1")))

	s.Require().NoError(s.repo.DeleteAsset(s.ctx, "1"))

	loan, err := s.repo.FindActiveLoan(s.ctx, "1")
	s.Require().NoError(err)
	s.Nil(loan)
	got, err := s.repo.ListAssets(s.ctx)
	s.Require().NoError(err)
	s.assertEqual([]asset.Listing{{Asset: camera("2")}}, got)

	s.ErrorAs(s.repo.DeleteAsset(s.ctx, "1"), &asset.NotFoundError{})
}

func (s *ContractSuite) TestUpdateAssetInPlace() {
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("1")))
	edited := camera("1")
	edited.Name = "Renamed"
	edited.Description = nil

	s.Require().NoError(s.repo.UpdateAsset(s.ctx, "1", edited))

	got, err := s.repo.FindAsset(s.ctx, "1")
	s.Require().NoError(err)
	s.assertEqual(edited, got)
}

func (s *ContractSuite) TestUpdateAssetRekeysLoan() {
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("1")))
	s.Require().NoError(s.repo.InsertLoan(s.ctx, loanOf("1")))

	s.Require().NoError(s.repo.UpdateAsset(s.ctx, "1", camera("7")))

	_, err := s.repo.FindAsset(s.ctx, "1")
	s.ErrorAs(err, &asset.NotFoundError{})
	loan, err := s.repo.FindActiveLoan(s.ctx, "7")
	s.Require().NoError(err)
	want := loanOf("7")
	s.assertEqual(&want, loan)
	old, err := s.repo.FindActiveLoan(s.ctx, "1")
	s.Require().NoError(err)
	s.Nil(old)
}

func (s *ContractSuite) TestUpdateAssetErrors() {
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("1")))
	s.Require().NoError(s.repo.InsertAsset(s.ctx, camera("2")))

	s.ErrorIs(s.repo.UpdateAsset(s.ctx, "1", camera("2")), asset.ErrDuplicateKey)
	s.ErrorAs(s.repo.UpdateAsset(s.ctx, "9", camera("9")), &asset.NotFoundError{})

	got, err := s.repo.FindAsset(s.ctx, "1")
	s.Require().NoError(err)
	s.assertEqual(camera("1"), got)
}
