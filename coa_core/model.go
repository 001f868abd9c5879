package coa_core

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type AccountClass int

const (
	ASSET     AccountClass = 1
	LIABILITY AccountClass = 2
	EQUITY    AccountClass = 3
	REVENUE   AccountClass = 4
	COGS      AccountClass = 5
	EXPENSE   AccountClass = 6
)

var classNames = map[AccountClass]string{
	ASSET:     "asset",
	LIABILITY: "liability",
	EQUITY:    "equity",
	REVENUE:   "revenue",
	COGS:      "cogs",
	EXPENSE:   "expense",
}

func (c AccountClass) String() string {
	name, ok := classNames[c]
	if !ok {
		return fmt.Sprintf("class(%d)", int(c))
	}
	return name
}

func (c AccountClass) Valid() bool {
	_, ok := classNames[c]
	return ok
}

// Account is one node in the chart of accounts. Header accounts group a
// numeric block and are not postable, leaf accounts receive entries.
type Account struct {
	ID         uint         `json:"id" gorm:"primarykey"`
	Code       string       `json:"code" gorm:"index:account_code,unique"`
	Name       string       `json:"name"`
	Class      AccountClass `json:"class"`
	ParentCode string       `json:"parent_code"`
	IsActive   bool         `json:"is_active"`
	IsPostable bool         `json:"is_postable"`

	Created time.Time `json:"created"`
}

// ParseAccountCode splits a code like "6-1001" into its class prefix and
// numeric suffix.
func ParseAccountCode(code string) (AccountClass, int, error) {
	ss := strings.SplitN(strings.TrimSpace(code), "-", 2)
	if len(ss) != 2 {
		return 0, 0, &InvalidParentCodeError{Code: code}
	}

	prefix, err := strconv.Atoi(ss[0])
	if err != nil {
		return 0, 0, &InvalidParentCodeError{Code: code}
	}

	number, err := strconv.Atoi(ss[1])
	if err != nil || number < 0 {
		return 0, 0, &InvalidParentCodeError{Code: code}
	}

	class := AccountClass(prefix)
	if !class.Valid() {
		return 0, 0, &InvalidParentCodeError{Code: code}
	}

	return class, number, nil
}

// FormatAccountCode renders the canonical "{prefix}-{4 digit}" form.
func FormatAccountCode(class AccountClass, number int) string {
	return fmt.Sprintf("%d-%04d", int(class), number)
}

type ActionTaken string

const (
	ActionReused      ActionTaken = "reused"
	ActionAutoCreated ActionTaken = "auto_created"
	ActionNeedsReview ActionTaken = "needs_review"
)

type SuggestionStatus string

const (
	StatusPending     SuggestionStatus = "pending"
	StatusApproved    SuggestionStatus = "approved"
	StatusRejected    SuggestionStatus = "rejected"
	StatusNeedsReview SuggestionStatus = "needs_review"
)

// VehicleMetadata travels with a suggestion when the description names a
// vehicle-class asset. Plate and brand are asset-record facts, never the
// basis for a new ledger account.
type VehicleMetadata struct {
	Brand       string `json:"brand,omitempty"`
	Model       string `json:"model,omitempty"`
	PlateNumber string `json:"plate_number,omitempty"`
}

func (vm *VehicleMetadata) Empty() bool {
	if vm == nil {
		return true
	}
	return vm.Brand == "" && vm.Model == "" && vm.PlateNumber == ""
}

// Suggestion is the engine output for one description, persisted for review.
type Suggestion struct {
	ID        uint   `json:"id" gorm:"primarykey"`
	RequestID string `json:"request_id" gorm:"index:suggestion_request,unique"`

	Description       string `json:"description"`
	FinancialCategory string `json:"financial_category"`
	IntentCode        string `json:"intent_code"`

	SelectedAccountCode  string `json:"selected_account_code"`
	SuggestedAccountName string `json:"suggested_account_name"`
	ParentAccount        string `json:"parent_account"`

	ActionTaken ActionTaken      `json:"action_taken"`
	Confidence  float64          `json:"confidence"`
	Status      SuggestionStatus `json:"status" gorm:"index"`
	Reasoning   string           `json:"reasoning"`

	VehicleBrand string `json:"vehicle_brand"`
	VehicleModel string `json:"vehicle_model"`
	PlateNumber  string `json:"plate_number"`

	Created  time.Time `json:"created"`
	Reviewed time.Time `json:"reviewed"`
}

func (s *Suggestion) SetVehicleMetadata(vm *VehicleMetadata) {
	if vm.Empty() {
		return
	}
	s.VehicleBrand = vm.Brand
	s.VehicleModel = vm.Model
	s.PlateNumber = vm.PlateNumber
}

func (s *Suggestion) VehicleMetadata() *VehicleMetadata {
	vm := VehicleMetadata{
		Brand:       s.VehicleBrand,
		Model:       s.VehicleModel,
		PlateNumber: s.PlateNumber,
	}
	if vm.Empty() {
		return nil
	}
	return &vm
}

// Advice is the advisory output of a free-text classification provider. The
// engine's override rules always dominate it.
type Advice struct {
	Category     string  `json:"category"`
	ProposedName string  `json:"proposed_name"`
	IntentCode   string  `json:"intent_code"`
	Reasoning    string  `json:"reasoning"`
	Confidence   float64 `json:"confidence"`
}
