package client

import (
	"bytes"
	"encoding/json"
	"finlit_game_backend/internal/catalog"
	"finlit_game_backend/internal/quiz"
	"fmt"
	"io"
	"net/http"
	"time"
)

// API 后端 REST 接口的类型化客户端
type API struct {
	BaseURL string
	HTTP    *http.Client
	State   *AuthState
}

func NewAPI(baseURL string, state *AuthState) *API {
	return &API{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 15 * time.Second},
		State:   state,
	}
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type authPayload struct {
	User  *UserInfo `json:"user"`
	Token string    `json:"token"`
}

func (c *API) do(method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.State != nil && c.State.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.State.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s %s: %d %s", method, path, resp.StatusCode, env.Message)
	}
	if out != nil && len(env.Data) > 0 {
		return json.Unmarshal(env.Data, out)
	}
	return nil
}

// StudentLogin 按姓名+年级登录，首次登录自动建档
func (c *API) StudentLogin(name string, grade int) (*UserInfo, error) {
	var payload authPayload
	err := c.do(http.MethodPost, "/api/students/login", map[string]interface{}{
		"name":  name,
		"grade": grade,
	}, &payload)
	if err != nil {
		return nil, err
	}
	if err := c.State.Set(payload.User, payload.Token); err != nil {
		return nil, err
	}
	return payload.User, nil
}

func (c *API) TeacherLogin(username, password string) (*UserInfo, error) {
	var payload authPayload
	err := c.do(http.MethodPost, "/api/teachers/login", map[string]string{
		"username": username,
		"password": password,
	}, &payload)
	if err != nil {
		return nil, err
	}
	if err := c.State.Set(payload.User, payload.Token); err != nil {
		return nil, err
	}
	return payload.User, nil
}

func (c *API) Levels() ([]catalog.Level, error) {
	var levels []catalog.Level
	err := c.do(http.MethodGet, "/api/levels", nil, &levels)
	return levels, err
}

func (c *API) LevelsByGrade(grade int) ([]catalog.Level, error) {
	var levels []catalog.Level
	err := c.do(http.MethodGet, fmt.Sprintf("/api/levels/grade/%d", grade), nil, &levels)
	return levels, err
}

func (c *API) Profile() (*UserInfo, error) {
	var user UserInfo
	err := c.do(http.MethodGet, "/api/students/profile", nil, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SubmitOutcome 实现 quiz.Submitter，关卡完成时上报结果
func (c *API) SubmitOutcome(outcome quiz.Outcome) error {
	return c.do(http.MethodPost, "/api/results", map[string]interface{}{
		"levelId":          outcome.LevelID,
		"grade":            outcome.Grade,
		"correctAnswers":   outcome.CorrectAnswers,
		"totalQuestions":   outcome.TotalQuestions,
		"timeTakenSeconds": outcome.TimeTakenSeconds,
	}, nil)
}
