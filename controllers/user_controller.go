package controllers

import (
	"marketplace/pkg/resp"
	"marketplace/pkg/session"
	"marketplace/services"
	"marketplace/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users    *services.UserService
	Sessions *session.Manager
}

func NewUserController(users *services.UserService, sessions *session.Manager) *UserController {
	return &UserController{Users: users, Sessions: sessions}
}

// POST /api/users/signup
func (ctl *UserController) Signup(c *gin.Context) {
	var in services.CredentialsInput
	if !bind(c, &in) {
		return
	}
	u, err := ctl.Users.Signup(c.Request.Context(), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if err := ctl.startSession(c, sessionData(u)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Created(c, u)
}

// POST /api/users/login
func (ctl *UserController) Login(c *gin.Context) {
	var in services.LoginInput
	if !bind(c, &in) {
		return
	}
	u, err := ctl.Users.Login(c.Request.Context(), in)
	if err != nil {
		resp.Fail(c, err)
		return
	}
	if err := ctl.startSession(c, sessionData(u)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, u)
}

// POST /api/users/logout
func (ctl *UserController) Logout(c *gin.Context) {
	if err := ctl.Sessions.Destroy(c, utils.CurrentSessionID(c)); err != nil {
		resp.Fail(c, err)
		return
	}
	resp.Message(c, "Logged out")
}

// GET /api/users/me
func (ctl *UserController) Me(c *gin.Context) {
	u, err := ctl.Users.Me(c.Request.Context(), utils.CurrentUserID(c))
	if err != nil {
		resp.Fail(c, err)
		return
	}
	resp.OK(c, u)
}

// startSession replaces any session the request already carried.
func (ctl *UserController) startSession(c *gin.Context, d *session.Data) error {
	if old := utils.CurrentSessionID(c); old != "" {
		if err := ctl.Sessions.Destroy(c, old); err != nil {
			return err
		}
	}
	sid, err := ctl.Sessions.Start(c, d)
	if err != nil {
		return err
	}
	utils.SetSession(c, sid, d)
	return nil
}
