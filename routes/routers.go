package routes

import (
	"context"

	"github.com/bwubca23694-eng/Brainware-Rooms/constants"
	"github.com/bwubca23694-eng/Brainware-Rooms/controllers"
	"github.com/bwubca23694-eng/Brainware-Rooms/middleware"
	"github.com/bwubca23694-eng/Brainware-Rooms/repository"
	"github.com/bwubca23694-eng/Brainware-Rooms/response"
	"github.com/bwubca23694-eng/Brainware-Rooms/services"
	"github.com/bwubca23694-eng/Brainware-Rooms/services/logger"
	"github.com/bwubca23694-eng/Brainware-Rooms/services/notification"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and controllers onto the router
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client, cld *cloudinary.Cloudinary) {
	roomRepo := repository.NewGormRoomRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	reviewRepo := repository.NewGormReviewRepository(db)
	userRepo := repository.NewGormUserRepository(db)

	notifier := notification.NewSMTPFromEnv()

	roomService := services.NewRoomService(roomRepo, reviewRepo, redisCli)
	bookingService := services.NewBookingService(bookingRepo, roomRepo, userRepo, notifier,
		logger.NewDefaultLogger(logger.InfoLevel))
	reviewService := services.NewReviewService(reviewRepo, roomRepo)
	userService := services.NewUserService(userRepo, roomRepo)
	dashboardService := services.NewDashboardService(roomRepo, bookingRepo, userRepo)

	authController := controllers.NewAuthController(userService, userRepo)
	roomController := controllers.NewRoomController(roomService, userRepo)
	reviewController := controllers.NewReviewController(reviewService, userRepo)
	bookingController := controllers.NewBookingController(bookingService, userRepo)
	userController := controllers.NewUserController(userService, userRepo)
	ownerController := controllers.NewOwnerController(roomService, dashboardService, userRepo)
	adminController := controllers.NewAdminController(roomService, userService, bookingService, dashboardService)

	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})

	api.POST("/auth/register", authController.Register)
	api.POST("/auth/login", authController.Login)
	api.POST("/auth/google", authController.GoogleAuth)
	api.GET("/auth/me", middleware.AuthMiddleware(), authController.Me)

	api.GET("/rooms", roomController.List)
	api.GET("/rooms/nearby", roomController.Nearby)
	api.GET("/rooms/:id", roomController.Detail)
	api.GET("/rooms/:id/reviews", reviewController.List)

	api.POST("/rooms", middleware.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), roomController.Create)
	api.PUT("/rooms/:id", middleware.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), roomController.Update)
	api.DELETE("/rooms/:id", middleware.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin), roomController.Delete)

	api.POST("/rooms/:id/reviews", middleware.AuthMiddleware(constants.RoleStudent), reviewController.Add)

	api.POST("/bookings/room/:roomId", middleware.AuthMiddleware(constants.RoleStudent), bookingController.Create)
	api.GET("/bookings/my", middleware.AuthMiddleware(constants.RoleStudent), bookingController.My)
	api.GET("/bookings/owner", middleware.AuthMiddleware(constants.RoleOwner), bookingController.Owner)
	api.PUT("/bookings/:id/cancel", middleware.AuthMiddleware(constants.RoleStudent), bookingController.Cancel)
	api.PUT("/bookings/:id/status", middleware.AuthMiddleware(constants.RoleOwner), bookingController.UpdateStatus)

	api.GET("/users/saved-rooms", middleware.AuthMiddleware(constants.RoleStudent), userController.SavedRooms)
	api.POST("/users/saved-rooms/:id", middleware.AuthMiddleware(constants.RoleStudent), userController.SaveRoom)
	api.DELETE("/users/saved-rooms/:id", middleware.AuthMiddleware(constants.RoleStudent), userController.UnsaveRoom)

	owner := api.Group("/owner", middleware.AuthMiddleware(constants.RoleOwner))
	owner.GET("/dashboard", ownerController.Dashboard)
	owner.GET("/rooms", ownerController.MyRooms)
	owner.PUT("/rooms/:id/toggle-availability", ownerController.ToggleAvailability)

	admin := api.Group("/admin", middleware.AuthMiddleware(constants.RoleAdmin))
	admin.GET("/dashboard", adminController.Dashboard)
	admin.GET("/users", adminController.ListUsers)
	admin.PUT("/users/:id", adminController.UpdateUser)
	admin.PUT("/users/:id/approve-owner", adminController.ApproveOwner)
	admin.DELETE("/users/:id", adminController.DeleteUser)
	admin.GET("/rooms", adminController.ListRooms)
	admin.GET("/rooms/pending", adminController.PendingRooms)
	admin.PUT("/rooms/:id/review", adminController.ReviewRoom)
	admin.GET("/bookings", adminController.ListBookings)

	upload := api.Group("/img", middleware.AuthMiddleware(constants.RoleOwner, constants.RoleAdmin))

	upload.POST("/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			response.BadRequest(c, "No file provided")
			return
		}

		src, err := file.Open()
		if err != nil {
			response.BadRequest(c, "Could not open file")
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
		if err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, gin.H{"url": resp.SecureURL})
	})

	upload.POST("/multi-upload", func(c *gin.Context) {
		form, err := c.MultipartForm()
		if err != nil {
			response.BadRequest(c, "No files provided")
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			response.BadRequest(c, "No files provided")
			return
		}

		var urls []string
		for _, file := range files {
			src, err := file.Open()
			if err != nil {
				response.BadRequest(c, "Could not open file")
				return
			}
			defer src.Close()

			ctx := context.Background()
			resp, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "rooms"})
			if err != nil {
				response.ServerError(c)
				return
			}
			urls = append(urls, resp.SecureURL)
		}
		response.Success(c, gin.H{"urls": urls})
	})
}
