package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はechoインスタンスを作る。
func New(feURL string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	if feURL != "" {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: []string{feURL},
		}))
	}

	return e
}

// Start はブロックして待ち受ける。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
