package device

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the device endpoints. Reads of a single device are
// open to any authenticated user; everything else requires an IT manager.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authn, managerOnly gin.HandlerFunc) {
	devices := r.Group("/devices", authn)
	{
		devices.GET("/get/:deviceId", handler.GetByID)

		devices.POST("/add", managerOnly, handler.Add)
		devices.GET("/all", managerOnly, handler.List)
		devices.PUT("/:deviceId/update", managerOnly, handler.Update)
		devices.PUT("/:deviceId/images", managerOnly, handler.AddImages)
		devices.PUT("/:deviceId/units", managerOnly, handler.AddUnits)
		devices.DELETE("/:deviceId/delete", managerOnly, handler.Delete)
	}
}
