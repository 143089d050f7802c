package extract

import "shareholder_catalyst/pkg/models"

// DemoExtract returns the built-in demonstration dataset used when no
// extraction credential is configured or no documents were acquired.
// The figures are Apple's fiscal 2023 numbers regardless of the
// requested ticker; demo mode is about exercising the pipeline shape,
// not the data.
func DemoExtract(ticker string) *models.FilingExtract {
	return &models.FilingExtract{
		TenK: &models.FinancialRecord{
			RevenueCurrent:     383285000000,
			RevenuePrior1:      394328000000,
			RevenuePrior2:      365817000000,
			OperatingIncome:    114301000000,
			NetIncomeCurrent:   96995000000,
			NetIncomePrior1:    99803000000,
			TotalAssets:        352755000000,
			TotalLiabilities:   290437000000,
			ShareholdersEquity: 62146000000,
			CashEquivalents:    29965000000,
			TotalDebt:          111088000000,
			SharesOutstanding:  15441880000,
		},
		Proxy: &models.GovernanceRecord{
			CEOTotalComp:          63209230,
			CEOBaseSalary:         3000000,
			CEOBonus:              0,
			CEOStockAwards:        52000000,
			CEOTotalCompPrior1:    99420000,
			SayOnPayApprovalPct:   95.4,
			BoardSize:             8,
			IndependentDirectors:  7,
			AverageDirectorTenure: 12.5,
			BoardMembers: []models.BoardMember{
				{Name: "Tim Cook", Independent: false, TenureYears: 12},
			},
		},
		EightK: &models.EventRecord{
			RecentEvents: []string{
				"Q4 earnings release",
				"Product announcement",
			},
		},
	}
}
