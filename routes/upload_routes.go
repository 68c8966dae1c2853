package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aleppo-guide/api-go/controllers"
)

func SetupUploadRoutes(admin *gin.RouterGroup, uploadController *controllers.UploadController) {
	uploads := admin.Group("/uploads")
	{
		uploads.POST("/presign", uploadController.GetPresignedURL)
		uploads.POST("/confirm", uploadController.ConfirmUpload)
		// Generated keys contain slashes (places/covers/...), so the
		// parameter must be a catch-all
		uploads.DELETE("/*key", uploadController.DeleteFile)
	}
}
