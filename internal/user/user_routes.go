package user

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the user endpoints. authn is the bearer-token
// middleware; ipLimit throttles the unauthenticated credential endpoints.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn, ipLimit gin.HandlerFunc) {
	r.POST("/check-email", handler.CheckEmail)

	users := r.Group("/users")
	{
		users.POST("/register/admin", ipLimit, handler.RegisterAdmin)
		users.POST("/register/user", ipLimit, handler.RegisterUser)
		users.GET("/otp/send", ipLimit, handler.SendOTP)
		users.PUT("/otp/verification", ipLimit, handler.VerifyOTP)
		users.POST("/password/initiate-reset", ipLimit, handler.InitiatePasswordReset)
		users.PUT("/password/change", ipLimit, handler.ChangePassword)
		users.POST("/login", ipLimit, handler.SignIn)
		users.POST("/logout", handler.SignOut)

		users.PUT("/:userId/update", authn, handler.Update)
		users.PUT("/:userId/update-avatar", authn, handler.UpdateAvatar)
		users.GET("/get/:userId", authn, handler.GetByID)
		users.GET("/all", authn, handler.List)
	}
}
