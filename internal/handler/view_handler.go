package handler

import (
	"net/http"

	"portal/internal/catalog"
	"portal/internal/config"
	"portal/internal/domain/model"
	"portal/internal/middleware"
	"portal/internal/repository"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 画面系ルートのHTTP。描画はフロントがやるので、ここは
// ガード判定と画面用データ（ナビ・商品・レシート）だけ返す。
type ViewHandler struct {
	catalog  *catalog.Catalog
	checkout *usecase.CheckoutUsecase
}

// DI
func NewViewHandler(cat *catalog.Catalog, checkout *usecase.CheckoutUsecase) *ViewHandler {
	return &ViewHandler{catalog: cat, checkout: checkout}
}

// ロールの表示メタデータ（ナビ用）。セッションのロールから導出するだけ。
type NavMetadata struct {
	Role          model.AccessRole `json:"role"`
	Label         string           `json:"label"`
	DashboardPath string           `json:"dashboardPath"`
}

func navFor(role model.AccessRole) NavMetadata {
	labels := map[model.AccessRole]string{
		model.RoleTechnician:  "Technician",
		model.RoleShop:        "Shop",
		model.RoleDistributor: "Distributor",
	}
	return NavMetadata{
		Role:          role,
		Label:         labels[role],
		DashboardPath: "/dashboard/" + string(role),
	}
}

type ViewResponse struct {
	View string      `json:"view"`
	Nav  NavMetadata `json:"nav,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

// ガード付きの画面ルートを登録。
// すべてのナビゲーションでセッションを復元してガードを毎回評価する。
func (h *ViewHandler) RegisterRoutes(e *echo.Echo, cfg config.Config, store repository.KVStore) {
	sess := middleware.SessionContext(cfg, store)

	// 未認証専用
	e.GET("/", h.landing, sess, middleware.PublicOnlyGuard())
	e.GET("/login/:role", h.loginPage, sess, middleware.PublicOnlyGuard())

	// 認証必須（ロール指定あり）
	e.GET("/dashboard/technician", h.dashboard(model.RoleTechnician), sess, middleware.ProtectedGuard(model.RoleTechnician))
	e.GET("/dashboard/shop", h.dashboard(model.RoleShop), sess, middleware.ProtectedGuard(model.RoleShop))
	e.GET("/dashboard/distributor", h.dashboard(model.RoleDistributor), sess, middleware.ProtectedGuard(model.RoleDistributor))
	e.GET("/dashboard/shop/:productId", h.productDetail, sess, middleware.ProtectedGuard(model.RoleShop))
	e.GET("/dashboard/shop/receipt/:orderId", h.receiptView, sess, middleware.ProtectedGuard(model.RoleShop))

	// 認証必須（どのロールでも可）
	e.GET("/resources", h.simpleView("resources"), sess, middleware.ProtectedGuard(model.RoleNone))
	e.GET("/support", h.simpleView("support"), sess, middleware.ProtectedGuard(model.RoleNone))
	e.GET("/thank-you/:type", h.thankYou, sess, middleware.ProtectedGuard(model.RoleNone))
}

func (h *ViewHandler) landing(c echo.Context) error {
	return c.JSON(http.StatusOK, ViewResponse{View: "landing"})
}

func (h *ViewHandler) loginPage(c echo.Context) error {
	role := model.ParseAccessRole(c.Param("role"))
	if !role.Valid() {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, ViewResponse{View: "login", Nav: navFor(role)})
}

func (h *ViewHandler) dashboard(role model.AccessRole) echo.HandlerFunc {
	return func(c echo.Context) error {
		res := ViewResponse{View: "dashboard", Nav: navFor(role)}

		// 注文できるのはshopだけなので、shopには商品一覧を載せる
		if role == model.RoleShop {
			res.Data = h.catalog.List()
		}
		return c.JSON(http.StatusOK, res)
	}
}

func (h *ViewHandler) productDetail(c echo.Context) error {
	p, ok := h.catalog.Find(c.Param("productId"))
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.JSON(http.StatusOK, ViewResponse{View: "product", Nav: navFor(model.RoleShop), Data: p})
}

func (h *ViewHandler) receiptView(c echo.Context) error {
	out, err := h.checkout.GetReceipt(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, ViewResponse{View: "receipt", Nav: navFor(model.RoleShop), Data: out})
}

func (h *ViewHandler) simpleView(name string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, ViewResponse{View: name, Nav: navFor(middleware.CurrentRole(c))})
	}
}

func (h *ViewHandler) thankYou(c echo.Context) error {
	return c.JSON(http.StatusOK, ViewResponse{
		View: "thank-you",
		Nav:  navFor(middleware.CurrentRole(c)),
		Data: map[string]string{"type": c.Param("type")},
	})
}
