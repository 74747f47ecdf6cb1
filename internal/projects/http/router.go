package http

import "github.com/gin-gonic/gin"

// Register attaches the project API to rg. downloadMW runs in front of the
// download endpoint only.
func (h *Handler) Register(rg *gin.RouterGroup, downloadMW ...gin.HandlerFunc) {
	rg.GET("/tech-stacks", h.techStacks)
	rg.GET("/features", h.features)

	projects := rg.Group("/projects")
	projects.POST("", h.create)
	projects.GET("", h.list)
	projects.GET("/:id", h.get)

	rg.POST("/generate", h.generate)
	rg.POST("/download", append(downloadMW, h.download)...)
}
