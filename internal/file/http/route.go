package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers file routes. Uploads are restricted to admins,
// downloads are public so bike images render without a token.
func RegisterRoutes(r gin.IRouter, handler *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := r.Group("/files")

	group.POST("", authMiddleware, adminMiddleware, handler.Upload)
	group.GET("/:id", handler.ServeFile)
	group.GET("/:id/thumbnail", handler.ServeThumbnail)
}
