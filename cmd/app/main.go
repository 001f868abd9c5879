package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	coa_service "github.com/gudangkita/coa_service"
	"github.com/gudangkita/coa_service/advisor"
	"github.com/gudangkita/coa_service/coa_core"
	"github.com/gudangkita/coa_service/configs"
	"github.com/gudangkita/coa_service/directory"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func NewDatabase(cfg *configs.AppConfig) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case "postgres":
		return gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.Database.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

func NewCache(cfg *configs.AppConfig) (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions(cfg.CacheDir))
}

func NewCategoryRules(cfg *configs.AppConfig) ([]*coa_core.CategoryRule, error) {
	if cfg.Engine.CategoryRulesPath != "" {
		return coa_core.LoadCategoryRules(cfg.Engine.CategoryRulesPath)
	}
	return coa_core.DefaultCategoryRules(), nil
}

// NewAdvisor prefers the Claude provider, falling back to the offline
// bayesian classifier when no api key is configured.
func NewAdvisor(cfg *configs.AppConfig, rules []*coa_core.CategoryRule) coa_core.Advisor {
	if cfg.Anthropic.APIKey != "" {
		adv, err := advisor.NewAnthropic(cfg.Anthropic.APIKey, cfg.Anthropic.Model)
		if err == nil {
			return adv
		}
		slog.Error("anthropic advisor unavailable", "err", err.Error())
	}

	log.Println("using bayesian fallback advisor")
	return advisor.NewBayes(rules)
}

func NewEngine(cfg *configs.AppConfig, adv coa_core.Advisor, rules []*coa_core.CategoryRule) *coa_core.Engine {
	opts := []coa_core.EngineOption{
		coa_core.WithCategoryRules(rules),
	}
	if cfg.Engine.ReviewConfidence != 0 {
		opts = append(opts, coa_core.WithReviewConfidence(cfg.Engine.ReviewConfidence))
	}
	return coa_core.NewEngine(adv, opts...)
}

func NewDirectory(db *gorm.DB, bdb *badger.DB) directory.Provider {
	return directory.NewCached(
		directory.NewDirectoryService(db),
		bdb,
		30*time.Second,
	)
}

func withCors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Headers", "Referer, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Accept, Origin, Cache-Control, X-Requested-With")
		w.Header().Set("Access-Control-Allow-Methods", "HEAD,PATCH,OPTIONS,GET,POST,PUT,DELETE")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type App struct {
	Run func() error
}

func NewApp(
	mux *http.ServeMux,
	register coa_service.RegisterHandler,
	migrate coa_service.MigrationHandler,
	seed coa_service.SeedHandler,
) *App {
	return &App{
		Run: func() error {
			err := migrate()
			if err != nil {
				return err
			}
			err = seed()
			if err != nil {
				return err
			}

			register()

			port := os.Getenv("PORT")
			if port == "" {
				port = "8081"
			}

			host := os.Getenv("HOST")
			listen := fmt.Sprintf("%s:%s", host, port)
			log.Println("listening on", listen)

			return http.ListenAndServe(
				listen,
				// h2c serves HTTP/2 without TLS
				h2c.NewHandler(
					withCors(mux),
					&http2.Server{}),
			)
		},
	}
}

func main() {
	app, err := InitializeApp()
	if err != nil {
		panic(err)
	}

	err = app.Run()
	if err != nil {
		panic(err)
	}
}
