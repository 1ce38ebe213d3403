package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SaPok5/prs-sub001/internal/core/domain"
	portssvc "github.com/SaPok5/prs-sub001/internal/core/ports/services"
	"github.com/SaPok5/prs-sub001/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SalesServiceTestSuite struct {
	suite.Suite
	mockReportingRepo *MockReportingRepository
	service           portssvc.SalesSvcFacade
	admin             domain.Principal
	window            domain.Window
}

func (s *SalesServiceTestSuite) SetupTest() {
	s.mockReportingRepo = new(MockReportingRepository)
	s.service = services.NewSalesService(s.mockReportingRepo)
	s.admin = domain.Principal{
		UserID:         uuid.NewString(),
		OrganizationID: uuid.NewString(),
		Roles:          []domain.RoleName{domain.RoleAdmin},
	}
	start := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	s.window = domain.Window{Start: start, End: start.AddDate(0, 1, 0)}
}

func figure(userID, teamID, workTypeID string, dealValue, verifiedPaid int64) domain.DealFigures {
	return domain.DealFigures{
		DealID:       uuid.NewString(),
		UserID:       userID,
		UserName:     "user " + userID,
		TeamID:       teamID,
		TeamName:     "team " + teamID,
		WorkTypeID:   workTypeID,
		WorkTypeName: "wt " + workTypeID,
		DealValue:    decimal.NewFromInt(dealValue),
		VerifiedPaid: decimal.NewFromInt(verifiedPaid),
	}
}

func (s *SalesServiceTestSuite) TestWorkTypeReport_OverallEqualsEmployeeSum() {
	figures := []domain.DealFigures{
		figure("u1", "t1", "wt1", 1000, 400),
		figure("u1", "t1", "wt2", 2000, 2000),
		figure("u2", "t2", "wt1", 3000, 1000),
	}

	s.mockReportingRepo.On("GetDealFigures", mock.Anything, s.admin.OrganizationID, s.window, "", "").
		Return(figures, nil).Once()

	report, err := s.service.WorkTypeReport(context.Background(), s.admin, s.window, "", "")

	s.Require().NoError(err)
	s.Require().Len(report.Employees, 2)

	var fromEmployees domain.SalesTotals
	for _, emp := range report.Employees {
		fromEmployees.Add(emp.Totals)
	}
	s.True(report.OverallTotals.TotalSales.Equal(fromEmployees.TotalSales))
	s.True(report.OverallTotals.TotalPaid.Equal(fromEmployees.TotalPaid))
	s.True(report.OverallTotals.TotalDues.Equal(fromEmployees.TotalDues))
	s.Equal(report.OverallTotals.DealCount, fromEmployees.DealCount)

	s.True(report.OverallTotals.TotalSales.Equal(decimal.NewFromInt(6000)))
	s.True(report.OverallTotals.TotalPaid.Equal(decimal.NewFromInt(3400)))
	s.Equal(3, report.OverallTotals.DealCount)
}

func (s *SalesServiceTestSuite) TestWorkTypeReport_DuesFlooredPerDeal() {
	// One deal overpaid, one underpaid. Dues must be 0 + 600, not -500 + 600.
	figures := []domain.DealFigures{
		figure("u1", "t1", "wt1", 1000, 1500),
		figure("u1", "t1", "wt1", 1000, 400),
	}

	s.mockReportingRepo.On("GetDealFigures", mock.Anything, s.admin.OrganizationID, s.window, "", "").
		Return(figures, nil).Once()

	report, err := s.service.WorkTypeReport(context.Background(), s.admin, s.window, "", "")

	s.Require().NoError(err)
	s.True(report.OverallTotals.TotalDues.Equal(decimal.NewFromInt(600)),
		"expected dues 600, got %s", report.OverallTotals.TotalDues)
}

func (s *SalesServiceTestSuite) TestTeamSales_TeamTotalsSumEmployees() {
	figures := []domain.DealFigures{
		figure("u1", "t1", "wt1", 1000, 1000),
		figure("u2", "t1", "wt1", 2000, 500),
		figure("u3", "t2", "wt2", 4000, 4000),
	}

	s.mockReportingRepo.On("GetDealFigures", mock.Anything, s.admin.OrganizationID, s.window, "", "").
		Return(figures, nil).Once()

	teams, overall, err := s.service.TeamSales(context.Background(), s.admin, s.window)

	s.Require().NoError(err)
	s.Require().Len(teams, 2)

	var fromTeams domain.SalesTotals
	for _, team := range teams {
		var fromEmployees domain.SalesTotals
		for _, emp := range team.Employees {
			fromEmployees.Add(emp.Totals)
		}
		s.True(team.Totals.TotalSales.Equal(fromEmployees.TotalSales))
		fromTeams.Add(team.Totals)
	}
	s.True(overall.TotalSales.Equal(fromTeams.TotalSales))
	s.True(overall.TotalSales.Equal(decimal.NewFromInt(7000)))
}

func (s *SalesServiceTestSuite) TestTopPerformers_SortsAndBreaksTies() {
	figures := []domain.DealFigures{
		figure("u-b", "t1", "wt1", 5000, 0),
		figure("u-a", "t1", "wt1", 5000, 0),
		figure("u-c", "t1", "wt1", 9000, 0),
	}

	s.mockReportingRepo.On("GetDealFigures", mock.Anything, s.admin.OrganizationID, s.window, "", "").
		Return(figures, nil).Once()

	performers, err := s.service.TopPerformers(context.Background(), s.admin, s.window, 10)

	s.Require().NoError(err)
	s.Require().Len(performers, 3)
	s.Equal("u-c", performers[0].UserID)
	// Equal sales, tie broken by user ID ascending.
	s.Equal("u-a", performers[1].UserID)
	s.Equal("u-b", performers[2].UserID)
}

func (s *SalesServiceTestSuite) TestTopPerformers_AppliesLimit() {
	figures := []domain.DealFigures{
		figure("u1", "t1", "wt1", 3000, 0),
		figure("u2", "t1", "wt1", 2000, 0),
		figure("u3", "t1", "wt1", 1000, 0),
	}

	s.mockReportingRepo.On("GetDealFigures", mock.Anything, s.admin.OrganizationID, s.window, "", "").
		Return(figures, nil).Once()

	performers, err := s.service.TopPerformers(context.Background(), s.admin, s.window, 2)

	s.Require().NoError(err)
	s.Len(performers, 2)
}

func (s *SalesServiceTestSuite) TestWorkTypeReport_EmptyWindow() {
	s.mockReportingRepo.On("GetDealFigures", mock.Anything, s.admin.OrganizationID, s.window, "", "").
		Return([]domain.DealFigures{}, nil).Once()

	report, err := s.service.WorkTypeReport(context.Background(), s.admin, s.window, "", "")

	s.Require().NoError(err)
	s.Empty(report.Employees)
	s.True(report.OverallTotals.TotalSales.Equal(decimal.Zero))
	s.Equal(0, report.OverallTotals.DealCount)
}

func TestSalesServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SalesServiceTestSuite))
}
