package employee

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn, managerOnly gin.HandlerFunc) {
	employees := r.Group("/employees", authn)
	{
		employees.POST("/onboard", managerOnly, handler.Onboard)
		employees.GET("/all", managerOnly, handler.List)
		employees.GET("/get/:employeeId", handler.GetByID)
		employees.PUT("/:employeeId/update", managerOnly, handler.Update)
		employees.PUT("/:employeeId/update-avatar", managerOnly, handler.UpdateAvatar)
	}
}
