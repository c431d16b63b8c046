package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/pos-service/internal/httpx"
	"github.com/MikeMC777/pos-service/internal/user"
)

// loginHandler godoc
// @Summary      Log in
// @Description  Username, password and the role picked on the login screen must all match.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      user.LoginRequest  true  "Credentials"
// @Success      200   {object}  user.LoginResponse
// @Failure      400   {object}  httpx.ErrorBody
// @Failure      401   {object}  httpx.ErrorBody
// @Router       /api/auth/login [post]
func loginHandler(svc *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in user.LoginRequest
		if err := c.ShouldBindJSON(&in); err != nil {
			httpx.BadRequest(c, "invalid JSON body")
			return
		}
		u, tok, err := svc.Login(c.Request.Context(), in)
		if err != nil {
			httpx.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, user.LoginResponse{Success: true, User: *u, Token: tok, Message: "Login successful"})
	}
}

// logoutHandler godoc
// @Summary      Log out
// @Description  Tokens are stateless; the client drops its copy.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  httpx.MessageBody
// @Router       /api/auth/logout [post]
func logoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		httpx.Message(c, "Logged out successfully")
	}
}
