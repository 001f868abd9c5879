package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gocarina/gocsv"
	coa_service "github.com/gudangkita/coa_service"
	"github.com/gudangkita/coa_service/advisor"
	"github.com/gudangkita/coa_service/coa_core"
	"github.com/gudangkita/coa_service/configs"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openDatabase(cmd *cobra.Command) (*gorm.DB, *configs.AppConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := configs.Load(path)
	if err != nil {
		return nil, nil, err
	}

	var db *gorm.DB
	switch cfg.Database.Driver {
	case "postgres":
		db, err = gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.Database.DSN), &gorm.Config{})
	default:
		err = fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
	if err != nil {
		return nil, nil, err
	}

	return db, cfg, nil
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			return coa_service.NewMigrationHandler(db)()
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the default chart of accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDatabase(cmd)
			if err != nil {
				return err
			}
			return coa_service.NewSeedHandler(db)()
		},
	}
}

func newSuggestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <description>",
		Short: "Run the suggestion engine for one description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, cfg, err := openDatabase(cmd)
			if err != nil {
				return err
			}

			rules := coa_core.DefaultCategoryRules()
			if cfg.Engine.CategoryRulesPath != "" {
				rules, err = coa_core.LoadCategoryRules(cfg.Engine.CategoryRulesPath)
				if err != nil {
					return err
				}
			}

			var adv coa_core.Advisor
			if cfg.Anthropic.APIKey != "" {
				adv, err = advisor.NewAnthropic(cfg.Anthropic.APIKey, cfg.Anthropic.Model)
				if err != nil {
					return err
				}
			} else {
				adv = advisor.NewBayes(rules)
			}

			engine := coa_core.NewEngine(adv, coa_core.WithCategoryRules(rules))

			accounts := []*coa_core.Account{}
			err = db.
				Model(&coa_core.Account{}).
				Where("is_active = ?", true).
				Find(&accounts).
				Error
			if err != nil {
				return err
			}

			sug, err := engine.Suggest(cmd.Context(), args[0], accounts)
			if err != nil {
				return err
			}

			printSuggestion(sug)
			return nil
		},
	}
}

func printSuggestion(sug *coa_core.Suggestion) {
	header := color.New(color.BgGreen, color.FgBlack)
	switch sug.ActionTaken {
	case coa_core.ActionNeedsReview:
		header = color.New(color.BgYellow, color.FgBlack)
	case coa_core.ActionReused:
		header = color.New(color.BgCyan, color.FgBlack)
	}
	header.Printf(" %s ", sug.ActionTaken)
	fmt.Println()

	fmt.Printf("category:   %s\n", sug.FinancialCategory)
	fmt.Printf("account:    %s %s\n", sug.SelectedAccountCode, sug.SuggestedAccountName)
	fmt.Printf("parent:     %s\n", sug.ParentAccount)
	fmt.Printf("confidence: %.2f\n", sug.Confidence)
	if sug.Reasoning != "" {
		fmt.Printf("reasoning:  %s\n", sug.Reasoning)
	}
	if vm := sug.VehicleMetadata(); vm != nil {
		fmt.Printf("vehicle:    %s %s %s\n", vm.Brand, vm.Model, vm.PlateNumber)
	}
}

type suggestionRow struct {
	ID                   uint    `csv:"id"`
	Description          string  `csv:"description"`
	FinancialCategory    string  `csv:"category"`
	SelectedAccountCode  string  `csv:"account_code"`
	SuggestedAccountName string  `csv:"account_name"`
	ParentAccount        string  `csv:"parent_account"`
	ActionTaken          string  `csv:"action"`
	Confidence           float64 `csv:"confidence"`
	Status               string  `csv:"status"`
}

func newExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Dump all suggestions as csv to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := openDatabase(cmd)
			if err != nil {
				return err
			}

			sugs := []*coa_core.Suggestion{}
			err = db.
				Model(&coa_core.Suggestion{}).
				Order("id").
				Find(&sugs).
				Error
			if err != nil {
				return err
			}

			rows := make([]*suggestionRow, 0, len(sugs))
			for _, sug := range sugs {
				rows = append(rows, &suggestionRow{
					ID:                   sug.ID,
					Description:          sug.Description,
					FinancialCategory:    sug.FinancialCategory,
					SelectedAccountCode:  sug.SelectedAccountCode,
					SuggestedAccountName: sug.SuggestedAccountName,
					ParentAccount:        sug.ParentAccount,
					ActionTaken:          string(sug.ActionTaken),
					Confidence:           sug.Confidence,
					Status:               string(sug.Status),
				})
			}

			return gocsv.Marshal(&rows, os.Stdout)
		},
	}
}
