package model

// AccessRole はパートナー区分。ルート認可はこれだけを見る。
type AccessRole string

const (
	RoleTechnician  AccessRole = "technician"
	RoleShop        AccessRole = "shop"
	RoleDistributor AccessRole = "distributor"

	// 未認証
	RoleNone AccessRole = ""
)

// ParseAccessRole はrole文字列をAccessRoleにする。未知の値はRoleNone。
func ParseAccessRole(s string) AccessRole {
	switch AccessRole(s) {
	case RoleTechnician, RoleShop, RoleDistributor:
		return AccessRole(s)
	default:
		return RoleNone
	}
}

// Valid は3区分のどれかならtrue。
func (r AccessRole) Valid() bool {
	return r == RoleTechnician || r == RoleShop || r == RoleDistributor
}

// Identity は認証済みユーザーのプロフィール。
// coreが解釈するのはRoleのみで、他のフィールドは表示用。
// 未知のJSONフィールドは読み捨てる（閉じたレコード）。
type Identity struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Country     string `json:"country"`
	PhoneNumber string `json:"phoneNumber"`
}

// AccessRole はRoleフィールドから導出する。
func (i *Identity) AccessRole() AccessRole {
	if i == nil {
		return RoleNone
	}
	return ParseAccessRole(i.Role)
}
