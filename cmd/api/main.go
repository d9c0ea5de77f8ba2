package main

import (
	"portal/internal/catalog"
	"portal/internal/config"
	"portal/internal/domain/model"
	"portal/internal/handler"
	"portal/internal/infra/db"
	infraRepo "portal/internal/infra/repository"
	"portal/internal/infra/orderapi"
	"portal/internal/server"
	"portal/internal/usecase"
	"portal/internal/validator"

	"github.com/joho/godotenv"
)

func main() {
	// .envは無くてもいい（本番は環境変数で渡す）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// DB接続
	gormDB, err := db.Connect()
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.PartnerAccount{},
		&model.KVRecord{},
	); err != nil {
		panic(err)
	}

	// Repository（GORM実装）生成
	accountRepo := infraRepo.NewAccountGormRepository(gormDB)
	kvStore := infraRepo.NewKVGormStore(gormDB)

	// カタログと注文APIクライアント
	cat := catalog.New()
	orderClient := orderapi.NewClient(cfg.OrderAPIURL)

	// Usecase生成
	authUC := usecase.NewAuthUsecase(cfg, accountRepo, kvStore, validator.NewAuthValidator())
	cartUC := usecase.NewCartUsecase(kvStore, cat)
	checkoutUC := usecase.NewCheckoutUsecase(kvStore, orderClient)

	// Handler生成
	authH := handler.NewAuthHandler(authUC)
	cartH := handler.NewCartHandler(cartUC)
	orderH := handler.NewOrderHandler(checkoutUC)
	viewH := handler.NewViewHandler(cat, checkoutUC)

	// Server起動
	e := server.New(cfg.FEURL)
	server.RegisterRoutes(e, cfg, kvStore, authH, cartH, orderH, viewH)

	addr := cfg.Port
	if addr != "" && addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(e, addr); err != nil {
		panic(err)
	}
}
