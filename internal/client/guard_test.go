package client

import (
	"finlit_game_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	cases := []struct {
		name          string
		authenticated bool
		role          model.UserRole
		required      model.UserRole
		want          Decision
	}{
		{"unauthenticated", false, model.Student, model.Student, DecisionRedirectToLogin},
		{"student on student route", true, model.Student, model.Student, DecisionAllow},
		{"teacher on teacher route", true, model.Teacher, model.Teacher, DecisionAllow},
		{"admin on teacher route", true, model.Admin, model.Teacher, DecisionAllow},
		{"admin on admin route", true, model.Admin, model.Admin, DecisionAllow},
		{"teacher on admin route", true, model.Teacher, model.Admin, DecisionRedirectToLogin},
		{"student on teacher route", true, model.Student, model.Teacher, DecisionRedirectToLogin},
		{"teacher on student route", true, model.Teacher, model.Student, DecisionRedirectToLogin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allow(tc.authenticated, tc.role, tc.required))
		})
	}
}
