package coa_core

import "time"

// DefaultChartOfAccounts is the seed chart for a fresh installation. Header
// accounts own a thousand-block and are not postable; the engine allocates
// auto-created accounts inside their parent's block.
func DefaultChartOfAccounts() []*Account {
	now := time.Now()

	chart := []*Account{
		// assets
		{Code: "1-1000", Name: "Kas & Bank", Class: ASSET, IsPostable: false},
		{Code: "1-1001", Name: "Kas", Class: ASSET, ParentCode: "1-1000", IsPostable: true},
		{Code: "1-1002", Name: "Kas Kecil", Class: ASSET, ParentCode: "1-1000", IsPostable: true},
		{Code: "1-2000", Name: "Aset Tetap", Class: ASSET, IsPostable: false},
		{Code: "1-3000", Name: "Piutang Usaha", Class: ASSET, IsPostable: false},
		{Code: "1-3001", Name: "Piutang Dagang", Class: ASSET, ParentCode: "1-3000", IsPostable: true},
		{Code: "1-4000", Name: "Persediaan", Class: ASSET, IsPostable: false},
		{Code: "1-4001", Name: "Persediaan Barang Dagang", Class: ASSET, ParentCode: "1-4000", IsPostable: true},
		{Code: "1-5000", Name: "Peralatan", Class: ASSET, IsPostable: false},

		// liabilities
		{Code: "2-1000", Name: "Kewajiban Lancar", Class: LIABILITY, IsPostable: false},
		{Code: "2-1001", Name: "Hutang Usaha", Class: LIABILITY, ParentCode: "2-1000", IsPostable: true},
		{Code: "2-2000", Name: "Kewajiban Jangka Panjang", Class: LIABILITY, IsPostable: false},

		// equity
		{Code: "3-1000", Name: "Modal", Class: EQUITY, IsPostable: false},
		{Code: "3-1001", Name: "Modal Disetor", Class: EQUITY, ParentCode: "3-1000", IsPostable: true},
		{Code: "3-1002", Name: "Laba Ditahan", Class: EQUITY, ParentCode: "3-1000", IsPostable: true},

		// revenue
		{Code: "4-1000", Name: "Pendapatan", Class: REVENUE, IsPostable: false},
		{Code: "4-1001", Name: "Pendapatan Penjualan", Class: REVENUE, ParentCode: "4-1000", IsPostable: true},
		{Code: "4-1002", Name: "Pendapatan Jasa", Class: REVENUE, ParentCode: "4-1000", IsPostable: true},

		// cost of goods sold
		{Code: "5-1000", Name: "Harga Pokok Penjualan", Class: COGS, IsPostable: false},
		{Code: "5-1001", Name: "HPP Barang Dagang", Class: COGS, ParentCode: "5-1000", IsPostable: true},

		// expenses
		{Code: "6-1000", Name: "Beban Gaji", Class: EXPENSE, IsPostable: false},
		{Code: "6-2000", Name: "Beban Sewa", Class: EXPENSE, IsPostable: false},
		{Code: "6-3000", Name: "Beban Utilitas", Class: EXPENSE, IsPostable: false},
		{Code: "6-4000", Name: "Beban Komunikasi", Class: EXPENSE, IsPostable: false},
		{Code: "6-5000", Name: "Beban Transportasi", Class: EXPENSE, IsPostable: false},
		{Code: "6-6000", Name: "Beban Perlengkapan", Class: EXPENSE, IsPostable: false},
		{Code: "6-9000", Name: "Beban Lain-lain", Class: EXPENSE, IsPostable: false},
	}

	for _, acc := range chart {
		acc.IsActive = true
		acc.Created = now
	}

	return chart
}
