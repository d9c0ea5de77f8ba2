package guard

import "portal/internal/domain/model"

// ランディング（未認証の戻り先）
const LandingPath = "/"

// 判定結果。Allowがfalseならリダイレクト先が入る。
type Decision struct {
	Allow    bool
	Redirect string
}

// DashboardPath はロールのダッシュボードパス。
func DashboardPath(role model.AccessRole) string {
	return "/dashboard/" + string(role)
}

// PublicOnly は未認証専用ページ（ランディング・ログイン）の判定。
// 認証済みなら自分のダッシュボードへ飛ばす。
func PublicOnly(role model.AccessRole) Decision {
	if role != model.RoleNone {
		return Decision{Redirect: DashboardPath(role)}
	}
	return Decision{Allow: true}
}

// Protected は認証必須ページの判定。requiredがRoleNone以外なら一致も要求。
// 未認証はランディングへ、ロール違いは自分のダッシュボードへ飛ばす。
// 状態遷移ではなくナビゲーションごとに毎回評価する。
func Protected(role model.AccessRole, required model.AccessRole) Decision {
	if role == model.RoleNone {
		return Decision{Redirect: LandingPath}
	}
	if required != model.RoleNone && required != role {
		return Decision{Redirect: DashboardPath(role)}
	}
	return Decision{Allow: true}
}
