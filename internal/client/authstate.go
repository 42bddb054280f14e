package client

import (
	"encoding/json"
	"finlit_game_backend/internal/model"
	"os"
	"path/filepath"
)

// UserInfo 客户端本地保存的用户信息（服务端已去除密码哈希）
type UserInfo struct {
	ID              uint           `json:"id"`
	Name            string         `json:"name"`
	Username        string         `json:"username"`
	Role            model.UserRole `json:"role"`
	Grade           int            `json:"grade"`
	Coins           int            `json:"coins"`
	Score           int            `json:"score"`
	CompletedLevels []string       `json:"completedLevels"`
}

// AuthState 客户端会话上下文。两个字段（user、token）序列化到本地文件，
// 启动时恢复，对应浏览器端的 localStorage 持久化。
type AuthState struct {
	User  *UserInfo `json:"user"`
	Token string    `json:"token"`

	path string
}

func NewAuthState(path string) *AuthState {
	return &AuthState{path: path}
}

func (s *AuthState) IsAuthenticated() bool {
	return s.Token != ""
}

func (s *AuthState) Role() model.UserRole {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// Restore 从本地文件恢复会话；文件缺失或损坏视为未登录
func (s *AuthState) Restore() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	var stored AuthState
	if err := json.Unmarshal(data, &stored); err != nil {
		s.User = nil
		s.Token = ""
		return nil
	}
	s.User = stored.User
	s.Token = stored.Token
	return nil
}

// Set 更新会话并落盘
func (s *AuthState) Set(user *UserInfo, token string) error {
	s.User = user
	s.Token = token
	return s.persist()
}

// Logout 清空会话并删除本地文件
func (s *AuthState) Logout() error {
	s.User = nil
	s.Token = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *AuthState) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}
