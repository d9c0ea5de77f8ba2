package server

import (
	"portal/internal/config"
	"portal/internal/handler"
	"portal/internal/repository"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes は全ハンドラのルートをまとめて登録する。
func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	store repository.KVStore,
	authH *handler.AuthHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
	viewH *handler.ViewHandler,
) {
	authH.RegisterRoutes(e, cfg)
	cartH.RegisterRoutes(e, cfg)
	orderH.RegisterRoutes(e, cfg)
	viewH.RegisterRoutes(e, cfg, store)
}
