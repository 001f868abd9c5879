//go:build wireinject
// +build wireinject

package main

import (
	"net/http"

	"github.com/google/wire"
	coa_service "github.com/gudangkita/coa_service"
	"github.com/gudangkita/coa_service/configs"
)

func InitializeApp() (*App, error) {
	wire.Build(
		configs.NewProductionConfig,
		http.NewServeMux,
		NewDatabase,
		NewCache,
		NewCategoryRules,
		NewAdvisor,
		NewEngine,
		NewDirectory,
		coa_service.NewRegister,
		coa_service.NewMigrationHandler,
		coa_service.NewSeedHandler,
		NewApp,
	)

	return &App{}, nil
}
