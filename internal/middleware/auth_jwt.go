package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"portal/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	CtxAccountIDKey   = "account_id"   // int64
	CtxAccountRoleKey = "account_role" // string
)

// bearerAuth用のJWT検証ミドルウェア。
func AuthJWT(cfg config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			accountID, role, ok := parseBearer(c, cfg)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			// contextへ保存
			c.Set(CtxAccountIDKey, accountID)
			c.Set(CtxAccountRoleKey, role)

			return next(c)
		}
	}
}

// AuthorizationヘッダのJWTを検証してアカウントIDとロールを返す。
// ガード側で失敗を匿名扱いにできるよう、エラーではなくboolで返す。
func parseBearer(c echo.Context, cfg config.Config) (int64, string, bool) {
	// Authorizationヘッダを取得
	authz := c.Request().Header.Get("Authorization")
	if authz == "" {
		return 0, "", false
	}

	// Bearer形式か確認してtokenを抜く
	parts := strings.SplitN(authz, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return 0, "", false
	}
	rawToken := strings.TrimSpace(parts[1])
	if rawToken == "" {
		return 0, "", false
	}

	// JWTをパースして検証する
	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return 0, "", false
	}

	// claimsを取り出す
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, "", false
	}

	// account_idを取り出す
	accountID, err := parseAccountID(claims["sub"])
	if err != nil || accountID <= 0 {
		return 0, "", false
	}

	// roleを取り出す（technician/shop/distributor）
	role, err := parseString(claims["role"])
	if err != nil || role == "" {
		return 0, "", false
	}

	return accountID, role, true
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

// account_idをint64に変換する
func parseAccountID(v interface{}) (int64, error) {
	switch t := v.(type) {
	case float64:
		return int64(t), nil
	case string:
		return strconv.ParseInt(t, 10, 64)
	default:
		return 0, errors.New("invalid sub")
	}
}

func parseString(v interface{}) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errors.New("invalid string")
	}
	return s, nil
}
