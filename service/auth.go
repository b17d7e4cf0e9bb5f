package service

import (
	"context"
	"fmt"
	"time"

	"Inkwell/config"
	"Inkwell/dao"
	"Inkwell/models"
	"Inkwell/pkg/encrypt"
	"Inkwell/pkg/jwt"
	"Inkwell/pkg/response"
	"Inkwell/pkg/snowflake"
	"Inkwell/types"

	"gorm.io/gorm"
)

var _ IAuthService = (*AuthService)(nil)

type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error)
	Login(ctx context.Context, username, password string) (*types.LoginResponse, error)
}

type AuthService struct {
	Config   *config.Config
	UserDAO  *dao.Users
	Activity IActivityService
}

// Register 注册用户，角色只能是 writer 或 viewer，默认 viewer
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.Users, error) {
	if req.Username == "" || req.Password == "" {
		return nil, response.NewError(response.CodeBadRequest, "用户名和密码不能为空")
	}
	if req.Role == "" {
		req.Role = models.RoleViewer
	}
	if req.Role != models.RoleWriter && req.Role != models.RoleViewer {
		return nil, response.NewError(response.CodeBadRequest, "角色只能是 writer 或 viewer")
	}
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, response.NewError(response.CodeConflict, "用户名已存在")
	}

	user := &models.Users{
		ID:       uint64(snowflake.GenUserID()),
		Username: req.Username,
		Email:    req.Email,
		Password: encrypt.HashPassword(req.Password),
		Role:     req.Role,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		return nil, err
	}

	description := fmt.Sprintf("%s 于 %s 注册成功", user.Username, FormatNow())
	if _, err := s.Activity.Record(ctx, &user.ID, "用户注册", "user", user.ID, description); err != nil {
		return nil, err
	}

	return user, nil
}

// Login 登录，签发携带角色的 access token
func (s *AuthService) Login(ctx context.Context, username, password string) (*types.LoginResponse, error) {
	user, err := s.UserDAO.FindByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, response.NewError(response.CodeUnauthorized, "用户名或密码错误")
		}
		return nil, err
	}

	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, response.NewError(response.CodeUnauthorized, "用户名或密码错误")
	}

	expire := time.Duration(s.Config.Jwt.ExpireHours) * time.Hour
	token, err := jwt.GenerateToken(
		[]byte(s.Config.Jwt.Secret),
		user.ID,
		user.Username,
		user.Role,
		"access",
		expire,
	)
	if err != nil {
		return nil, err
	}

	return &types.LoginResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	}, nil
}
