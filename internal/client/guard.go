package client

import "finlit_game_backend/internal/model"

type Decision string

const (
	DecisionAllow           Decision = "allow"
	DecisionRedirectToLogin Decision = "redirect_to_login"
)

// Allow 路由守卫：渲染前同步判断，不发起网络请求。
// 管理员可进入教师路由，其余角色不做替换。
func Allow(authenticated bool, role, required model.UserRole) Decision {
	if !authenticated {
		return DecisionRedirectToLogin
	}
	if role == required {
		return DecisionAllow
	}
	if required == model.Teacher && role == model.Admin {
		return DecisionAllow
	}
	return DecisionRedirectToLogin
}
