package usecase

import (
	"context"
	"net/http"
	"time"

	"portal/internal/config"
	"portal/internal/domain/model"
	"portal/internal/repository"
	"portal/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// セッショントークンの有効期限
const sessionTokenTTL = 12 * time.Hour

// usecaseがValidatorInterfaceに依存する約束
type AuthValidator interface {
	ValidateLogin(ctx context.Context, role string, email string, password string) error
}

type AuthLoginInput struct {
	Role     string
	Email    string
	Password string
}

type SessionTokenDTO struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

type AuthLoginOutput struct {
	User  model.Identity  `json:"user"`
	Token SessionTokenDTO `json:"token"`
}

type AuthUsecase struct {
	cfg       config.Config
	accounts  repository.AccountRepository
	store     repository.KVStore
	validator AuthValidator
}

func NewAuthUsecase(
	cfg config.Config,
	accounts repository.AccountRepository,
	store repository.KVStore,
	validator AuthValidator,
) *AuthUsecase {
	return &AuthUsecase{
		cfg:       cfg,
		accounts:  accounts,
		store:     store,
		validator: validator,
	}
}

// Login はロール別ログインページからのログイン。
// 成功でIdentityをセッションへ入れ、トークンを永続する。
func (u *AuthUsecase) Login(ctx context.Context, in AuthLoginInput) (*AuthLoginOutput, error) {
	// 入力検証（validatorに寄せる）
	if err := u.validator.ValidateLogin(ctx, in.Role, in.Email, in.Password); err != nil {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid input")
	}

	role := model.ParseAccessRole(in.Role)
	if !role.Valid() {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid role")
	}

	// アカウント取得
	account, err := u.accounts.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if account == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	// 停止アカウントはログイン不可
	if !account.IsActive {
		return nil, NewHTTPError(http.StatusForbidden, "forbidden")
	}

	// パスワード照合（bcrypt）
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	// ログインページのロールとアカウントのロールが違えば拒否
	if account.Role != role {
		return nil, NewHTTPError(http.StatusForbidden, "role mismatch")
	}

	// last_login更新（失敗しても続ける）
	now := time.Now()
	account.LastLoginAt = &now
	_ = u.accounts.Update(ctx, account)

	// トークン発行
	token, expiresIn, err := u.issueSessionToken(account)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	// セッションへIdentityを入れて、トークンも永続する
	identity := account.ToIdentity()
	sess := session.NewManager(ctx, u.namespace(account.ID))
	if err := sess.SetIdentity(ctx, &identity); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	if err := sess.SetToken(ctx, token); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return &AuthLoginOutput{
		User: identity,
		Token: SessionTokenDTO{
			AccessToken: token,
			ExpiresIn:   expiresIn,
		},
	}, nil
}

// Me は現在のIdentity。セッションに無ければ401。
func (u *AuthUsecase) Me(ctx context.Context, accountID int64) (*model.Identity, error) {
	if accountID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	sess := session.NewManager(ctx, u.namespace(accountID))
	id := sess.Identity()
	if id == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	return id, nil
}

// Logout はセッションを未認証へ戻す。カートには触らない。
func (u *AuthUsecase) Logout(ctx context.Context, accountID int64) error {
	if accountID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	sess := session.NewManager(ctx, u.namespace(accountID))
	if err := sess.Logout(ctx); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return nil
}

func (u *AuthUsecase) namespace(accountID int64) repository.KVStore {
	return repository.Prefixed(u.store, repository.AccountNamespace(accountID))
}

// jwt発行
func (u *AuthUsecase) issueSessionToken(account *model.PartnerAccount) (string, int, error) {
	now := time.Now()
	exp := now.Add(sessionTokenTTL)

	claims := jwt.MapClaims{
		"sub":  account.ID,
		"role": string(account.Role),
		"jti":  uuid.NewString(),
		"iat":  now.Unix(),
		"exp":  exp.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := t.SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return "", 0, err
	}

	return signed, int(sessionTokenTTL.Seconds()), nil
}
