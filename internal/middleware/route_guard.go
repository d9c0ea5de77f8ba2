package middleware

import (
	"net/http"

	"portal/internal/config"
	"portal/internal/domain/model"
	"portal/internal/guard"
	"portal/internal/repository"
	"portal/internal/session"

	"github.com/labstack/echo/v4"
)

const CtxSessionKey = "portal_session"

// SessionContext はナビゲーション用のセッション復元ミドルウェア。
// bearerが無い・不正なら匿名のまま通す（ガードが判定する）。
func SessionContext(cfg config.Config, store repository.KVStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accountID, _, ok := parseBearer(c, cfg)
			if ok {
				ns := repository.Prefixed(store, repository.AccountNamespace(accountID))
				sess := session.NewManager(c.Request().Context(), ns)
				c.Set(CtxSessionKey, sess)
				c.Set(CtxAccountIDKey, accountID)
			}
			return next(c)
		}
	}
}

// CurrentRole はSessionContextが入れたセッションのロール。匿名ならRoleNone。
func CurrentRole(c echo.Context) model.AccessRole {
	sess, ok := c.Get(CtxSessionKey).(*session.Manager)
	if !ok || sess == nil {
		return model.RoleNone
	}
	return sess.Role()
}

// PublicOnlyGuard は未認証専用ページのガード。
// 認証済みは自分のダッシュボードへ302。
func PublicOnlyGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := guard.PublicOnly(CurrentRole(c))
			if !d.Allow {
				return c.Redirect(http.StatusFound, d.Redirect)
			}
			return next(c)
		}
	}
}

// ProtectedGuard は認証必須ページのガード。
// 未認証は "/" へ、ロール違いは自分のダッシュボードへ302。
// 要求されたページは一瞬も描画しない。
func ProtectedGuard(required model.AccessRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := guard.Protected(CurrentRole(c), required)
			if !d.Allow {
				return c.Redirect(http.StatusFound, d.Redirect)
			}
			return next(c)
		}
	}
}
