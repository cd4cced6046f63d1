// Package extract normalizes XBRL company facts into a metrics document:
// concept aliasing, temporal filtering, period deduplication, and derived
// figures (trends, margins, leverage, free cash flow).
package extract

// us-gaap concepts per metric. Companies report under different concept
// names, so each metric lists aliases in preference order.
var incomeConcepts = map[string][]string{
	"revenue": {
		"RevenueFromContractWithCustomerExcludingAssessedTax",
		"RevenueFromContractWithCustomerIncludingAssessedTax",
		"Revenues",
		"SalesRevenueNet",
		"SalesRevenueGoodsNet",
	},
	"cost_of_revenue": {
		"CostOfGoodsAndServicesSold",
		"CostOfRevenue",
		"CostOfGoodsSold",
	},
	"gross_profit": {
		"GrossProfit",
	},
	"operating_income": {
		"OperatingIncomeLoss",
	},
	"net_income": {
		"NetIncomeLoss",
		"ProfitLoss",
	},
	"eps_basic": {
		"EarningsPerShareBasic",
	},
	"eps_diluted": {
		"EarningsPerShareDiluted",
	},
}

var balanceSheetConcepts = map[string][]string{
	"total_assets": {
		"Assets",
	},
	"total_liabilities": {
		"Liabilities",
	},
	"stockholders_equity": {
		"StockholdersEquity",
		"StockholdersEquityIncludingPortionAttributableToNoncontrollingInterest",
	},
	"cash": {
		"CashAndCashEquivalentsAtCarryingValue",
		"CashCashEquivalentsAndShortTermInvestments",
		"Cash",
	},
	"long_term_debt": {
		"LongTermDebt",
		"LongTermDebtNoncurrent",
		"LongTermDebtAndCapitalLeaseObligations",
	},
	"short_term_debt": {
		"ShortTermBorrowings",
		"DebtCurrent",
	},
	"current_assets": {
		"AssetsCurrent",
	},
	"current_liabilities": {
		"LiabilitiesCurrent",
	},
	"shares_outstanding": {
		"CommonStockSharesOutstanding",
		"EntityCommonStockSharesOutstanding",
	},
}

var cashFlowConcepts = map[string][]string{
	"operating_cash_flow": {
		"NetCashProvidedByOperatingActivities",
		"NetCashProvidedByUsedInOperatingActivities",
		"NetCashProvidedByUsedInOperatingActivitiesContinuingOperations",
	},
	"capex": {
		"PaymentsToAcquirePropertyPlantAndEquipment",
		"PaymentsToAcquireProductiveAssets",
	},
	"dividends_paid": {
		"PaymentsOfDividends",
		"PaymentsOfDividendsCommonStock",
	},
}

// unitPriority orders unit kinds from most to least preferred when a concept
// reports under several units.
var unitPriority = []string{"USD", "USD/shares", "shares", "pure"}
