package controllers

import (
	"net/http"

	"Forkful/api/middlewares"

	"github.com/gin-gonic/gin"
)

func (s *Server) initializeRoutes() {
	s.Router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api/v1/restaurants")
	})
	s.Router.GET("/metrics", middlewares.MetricsHandler())

	auth := middlewares.TokenAuthMiddleware(s.DB)
	viewer := middlewares.OptionalAuthMiddleware(s.DB)
	admin := middlewares.AdminOnlyMiddleware()
	strict := middlewares.LoginRateLimitMiddleware()

	v1 := s.Router.Group("/api/v1")
	{
		// Account routes
		v1.POST("/signup", strict, s.SignUp)
		v1.POST("/signin", strict, s.SignIn)
		v1.POST("/password/forgot", strict, s.ForgotPassword)
		v1.POST("/password/reset", strict, s.ResetPassword)

		// Restaurant routes
		v1.GET("/restaurants", viewer, s.GetRestaurants)
		v1.GET("/restaurants/feeds", s.GetFeeds)
		v1.GET("/restaurants/top", viewer, s.GetTopRestaurants)
		v1.GET("/restaurants/:id", viewer, s.GetRestaurant)
		v1.GET("/restaurants/:id/dashboard", s.GetDashboard)

		// Comment routes
		v1.POST("/comments", auth, s.CreateComment)
		v1.DELETE("/comments/:id", auth, admin, s.DeleteComment)

		// Favorite and like routes
		v1.POST("/favorite/:restaurantId", auth, s.AddFavorite)
		v1.DELETE("/favorite/:restaurantId", auth, s.RemoveFavorite)
		v1.POST("/like/:restaurantId", auth, s.AddLike)
		v1.DELETE("/like/:restaurantId", auth, s.RemoveLike)

		// User routes
		v1.GET("/users/top", viewer, s.GetTopUsers)
		v1.POST("/following/:userId", auth, s.AddFollowing)
		v1.DELETE("/following/:userId", auth, s.RemoveFollowing)
		v1.GET("/users/:id", viewer, s.GetUser)
		v1.PUT("/users/:id", auth, s.UpdateUser)

		// Admin routes
		adminGroup := v1.Group("/admin", auth, admin)
		adminGroup.GET("/restaurants", s.AdminGetRestaurants)
		adminGroup.GET("/restaurants/:id", s.AdminGetRestaurant)
		adminGroup.GET("/categories", s.AdminGetCategories)
		adminGroup.GET("/categories/:id", s.AdminGetCategory)
	}
}
