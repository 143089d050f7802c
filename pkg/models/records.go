package models

// FinancialRecord holds the figures extracted from a 10-K.
// All fields default to zero; a record is never partially built.
type FinancialRecord struct {
	RevenueCurrent     float64 `json:"revenue_current"`
	RevenuePrior1      float64 `json:"revenue_prior_1"`
	RevenuePrior2      float64 `json:"revenue_prior_2"`
	OperatingIncome    float64 `json:"operating_income"`
	NetIncomeCurrent   float64 `json:"net_income_current"`
	NetIncomePrior1    float64 `json:"net_income_prior_1"`
	TotalAssets        float64 `json:"total_assets"`
	TotalLiabilities   float64 `json:"total_liabilities"`
	ShareholdersEquity float64 `json:"shareholders_equity"`
	CashEquivalents    float64 `json:"cash_equivalents"`
	TotalDebt          float64 `json:"total_debt"`
	SharesOutstanding  float64 `json:"shares_outstanding"`
}

// BoardMember is a single director row from a proxy statement.
type BoardMember struct {
	Name        string  `json:"name"`
	Independent bool    `json:"independent"`
	TenureYears float64 `json:"tenure_years"`
}

// GovernanceRecord holds compensation and board data extracted from a
// DEF 14A proxy statement. AverageDirectorTenure is derived from
// BoardMembers, never extracted directly.
type GovernanceRecord struct {
	CEOTotalComp          float64       `json:"ceo_total_comp"`
	CEOBaseSalary         float64       `json:"ceo_base_salary"`
	CEOBonus              float64       `json:"ceo_bonus"`
	CEOStockAwards        float64       `json:"ceo_stock_awards"`
	CEOTotalCompPrior1    float64       `json:"ceo_total_comp_prior_1"`
	SayOnPayApprovalPct   float64       `json:"say_on_pay_approval_pct"`
	BoardSize             int           `json:"board_size"`
	IndependentDirectors  int           `json:"independent_directors"`
	AverageDirectorTenure float64       `json:"average_director_tenure"`
	BoardMembers          []BoardMember `json:"board_members"`
}

// EventRecord summarizes recent 8-K material events. Built from filing
// metadata only; the documents themselves are not parsed.
type EventRecord struct {
	RecentEvents []string `json:"recent_events"`
}

// FilingExtract is the merged output of one extraction run. All three
// sub-records are always populated, with zero-value defaults standing
// in for categories that produced nothing.
type FilingExtract struct {
	TenK   *FinancialRecord  `json:"10k"`
	Proxy  *GovernanceRecord `json:"proxy"`
	EightK *EventRecord      `json:"8k"`
}

// NewFinancialRecord returns an all-zero financial record.
func NewFinancialRecord() *FinancialRecord {
	return &FinancialRecord{}
}

// NewGovernanceRecord returns an all-zero governance record with a
// non-nil board slice.
func NewGovernanceRecord() *GovernanceRecord {
	return &GovernanceRecord{BoardMembers: []BoardMember{}}
}

// NewEventRecord returns an event record with a non-nil, empty slice.
func NewEventRecord() *EventRecord {
	return &EventRecord{RecentEvents: []string{}}
}

// DeriveAverageTenure recomputes AverageDirectorTenure from the board
// members. An empty board yields 0.
func (g *GovernanceRecord) DeriveAverageTenure() {
	if len(g.BoardMembers) == 0 {
		g.AverageDirectorTenure = 0
		return
	}
	var total float64
	for _, m := range g.BoardMembers {
		total += m.TenureYears
	}
	g.AverageDirectorTenure = total / float64(len(g.BoardMembers))
}
