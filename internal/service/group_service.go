package service

import (
	"finlit_game_backend/internal/model"
	"finlit_game_backend/internal/repository"
	"finlit_game_backend/internal/util"
	"strings"
)

type GroupService struct {
	GroupRepo *repository.GroupRepository
	UserRepo  *repository.UserRepository
}

func NewGroupService(groupRepo *repository.GroupRepository, userRepo *repository.UserRepository) *GroupService {
	return &GroupService{GroupRepo: groupRepo, UserRepo: userRepo}
}

// CreateGroup 教师创建自己的班组。组名去除首尾空白后不能为空。
func (s *GroupService) CreateGroup(teacher *model.User, name string) (*model.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, util.ErrInvalidGroupName
	}
	group := &model.Group{
		Name:      name,
		TeacherID: teacher.ID,
	}
	if err := s.GroupRepo.Create(group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) ListGroups(teacherID uint) ([]model.Group, error) {
	return s.GroupRepo.ListByTeacher(teacherID)
}

// AddStudentToGroup 把学生加入班组。仅组的创建教师（或管理员）可操作，
// 目标必须是学生账号。重复加入静默成功。
func (s *GroupService) AddStudentToGroup(actor *model.User, groupID, studentID uint) (*model.Group, error) {
	group, err := s.GroupRepo.FindByID(groupID)
	if err != nil {
		return nil, util.ErrGroupNotFound
	}
	if group.TeacherID != actor.ID && actor.Role != model.Admin {
		return nil, util.ErrPermissionDenied
	}

	student, err := s.UserRepo.FindByID(studentID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	if student.Role != model.Student {
		return nil, util.ErrRoleMismatch
	}

	if group.AddStudent(student.ID) {
		if err := s.GroupRepo.Update(group); err != nil {
			return nil, err
		}
	}
	return group, nil
}
