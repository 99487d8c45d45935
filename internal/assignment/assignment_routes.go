package assignment

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn, managerOnly, idem gin.HandlerFunc) {
	assignments := r.Group("/employee/devices", authn)
	{
		assignments.POST("/assign", managerOnly, idem, handler.Assign)
		assignments.PUT("/:id/retrieve", managerOnly, handler.Retrieve)
		assignments.GET("/get/:id", handler.GetByID)
		assignments.GET("/all", managerOnly, handler.List)
	}
}
