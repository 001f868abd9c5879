package coa_core

import (
	"fmt"
	"os"
	"strings"

	yaml "gopkg.in/yaml.v2"
)

// CategoryRule maps description keywords onto a financial category and the
// header account its auto-created children belong under. Rules are static
// configuration, evaluated in declaration order because keyword sets overlap.
type CategoryRule struct {
	Name       string       `yaml:"name"`
	ParentCode string       `yaml:"parent_code"`
	Class      AccountClass `yaml:"class"`
	Keywords   []string     `yaml:"keywords"`

	// VehicleAsset marks a fixed-asset category whose descriptions carry
	// brand/model/plate metadata.
	VehicleAsset bool `yaml:"vehicle_asset"`
	// GenericNames are existing umbrella accounts matched before any
	// auto-create for this category.
	GenericNames []string `yaml:"generic_names"`
}

func DefaultCategoryRules() []*CategoryRule {
	return []*CategoryRule{
		{
			Name:         "Kendaraan",
			ParentCode:   "1-2000",
			Class:        ASSET,
			Keywords:     []string{"kendaraan", "mobil", "motor", "truk", "pickup"},
			VehicleAsset: true,
			GenericNames: []string{"Kendaraan", "Kendaraan Operasional"},
		},
		{
			Name:       "Gaji",
			ParentCode: "6-1000",
			Class:      EXPENSE,
			Keywords:   []string{"gaji", "payroll", "upah", "honor", "tunjangan", "thr"},
		},
		{
			Name:       "Sewa",
			ParentCode: "6-2000",
			Class:      EXPENSE,
			Keywords:   []string{"sewa", "kontrak gudang", "kontrak kantor"},
		},
		{
			Name:       "Utilitas",
			ParentCode: "6-3000",
			Class:      EXPENSE,
			Keywords:   []string{"listrik", "pln", "air pam", "pdam", "token listrik"},
		},
		{
			Name:       "Komunikasi",
			ParentCode: "6-4000",
			Class:      EXPENSE,
			Keywords:   []string{"internet", "telepon", "pulsa", "wifi", "indihome"},
		},
		{
			Name:       "Transportasi",
			ParentCode: "6-5000",
			Class:      EXPENSE,
			Keywords:   []string{"bensin", "solar", "tol", "parkir", "ongkir", "ekspedisi"},
		},
		{
			Name:       "Perlengkapan Kantor",
			ParentCode: "6-6000",
			Class:      EXPENSE,
			Keywords:   []string{"atk", "alat tulis", "perlengkapan kantor", "kertas", "tinta"},
		},
		{
			Name:       "Bank",
			ParentCode: "1-1000",
			Class:      ASSET,
			Keywords:   []string{"bank", "rekening", "giro", "deposito"},
		},
		{
			Name:       "Kas",
			ParentCode: "1-1000",
			Class:      ASSET,
			Keywords:   []string{"kas kecil", "petty cash", "kas "},
		},
		{
			Name:       "Peralatan",
			ParentCode: "1-5000",
			Class:      ASSET,
			Keywords:   []string{"peralatan", "mesin", "laptop", "komputer", "printer", "forklift", "rak gudang"},
		},
		{
			Name:       "Hutang",
			ParentCode: "2-1000",
			Class:      LIABILITY,
			Keywords:   []string{"hutang", "utang", "pinjaman", "cicilan", "leasing"},
		},
		{
			Name:       "Modal",
			ParentCode: "3-1000",
			Class:      EQUITY,
			Keywords:   []string{"modal", "setoran pemilik", "prive"},
		},
		{
			Name:       "Pendapatan",
			ParentCode: "4-1000",
			Class:      REVENUE,
			Keywords:   []string{"penjualan", "pendapatan", "jasa", "komisi", "invoice customer"},
		},
		{
			Name:       "HPP",
			ParentCode: "5-1000",
			Class:      COGS,
			Keywords:   []string{"pembelian barang", "hpp", "bahan baku", "restock", "kulakan"},
		},
		{
			Name:       "Beban Lainnya",
			ParentCode: "6-9000",
			Class:      EXPENSE,
			Keywords:   []string{"biaya admin", "materai", "retribusi", "iuran", "denda"},
		},
	}
}

// DetectCategory returns the first rule with a keyword contained in the
// lower-cased description, or nil.
func DetectCategory(description string, rules []*CategoryRule) *CategoryRule {
	desc := strings.ToLower(description)
	for _, rule := range rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(desc, kw) {
				return rule
			}
		}
	}
	return nil
}

// FindRule looks a rule up by category name, case-insensitively. Used to map
// an advisor's category guess back onto the rule table.
func FindRule(name string, rules []*CategoryRule) *CategoryRule {
	for _, rule := range rules {
		if strings.EqualFold(rule.Name, name) {
			return rule
		}
	}
	return nil
}

// LoadCategoryRules reads a rule table from a yaml file so keyword tables can
// be extended without touching control flow.
func LoadCategoryRules(path string) ([]*CategoryRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rules []*CategoryRule
	err = yaml.Unmarshal(data, &rules)
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if rule.Name == "" {
			return nil, fmt.Errorf("category rule without name in %s", path)
		}
		if _, _, err := ParseAccountCode(rule.ParentCode); err != nil {
			return nil, fmt.Errorf("category rule %s: %w", rule.Name, err)
		}
		for i, kw := range rule.Keywords {
			rule.Keywords[i] = strings.ToLower(kw)
		}
	}

	return rules, nil
}

// CategoryNames lists rule names in declaration order, for advisor prompts.
func CategoryNames(rules []*CategoryRule) []string {
	names := make([]string, 0, len(rules))
	for _, rule := range rules {
		names = append(names, rule.Name)
	}
	return names
}
