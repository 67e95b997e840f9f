package controllers

import (
	"errors"
	"net/http"

	"Forkful/api/aggregation"
	"Forkful/api/logging"
	"Forkful/api/models"
	"Forkful/api/utils/httpctx"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func logFor(c *gin.Context) *zerolog.Logger {
	return logging.Ctx(c.Request.Context())
}

// GetRestaurants lists one page of restaurants, optionally for one category,
// with the categories for the filter bar and the pagination metadata.
func (server *Server) GetRestaurants(c *gin.Context) {
	db := server.dbFor(c)
	viewer := httpctx.CurrentViewer(c)
	categoryID := parseIDQuery(c, "categoryId")
	page := aggregation.ParsePage(c.Query("page"))

	total, err := models.CountRestaurants(db, categoryID)
	if err != nil {
		internalError(c, err, "Error loading restaurants")
		return
	}
	pagination := aggregation.Paginate(total, page, server.listing().PageSize)

	restaurants, err := models.FindRestaurants(db, categoryID, pagination.Offset, pagination.Limit)
	if err != nil {
		internalError(c, err, "Error loading restaurants")
		return
	}
	categories, err := models.FindAllCategories(db)
	if err != nil {
		internalError(c, err, "Error loading categories")
		return
	}
	cards, err := restaurantCards(db, restaurants, viewer)
	if err != nil {
		internalError(c, err, "Error loading restaurants")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"restaurants": cards,
			"categories":  categories,
			"categoryId":  categoryID,
			"pagination":  pagination,
		},
	})
}

// GetFeeds returns the newest restaurants and the newest comments.
func (server *Server) GetFeeds(c *gin.Context) {
	db := server.dbFor(c)
	size := server.listing().FeedSize
	if size <= 0 {
		size = aggregation.DefaultPageSize
	}

	restaurants, err := models.FindLatestRestaurants(db, size)
	if err != nil {
		internalError(c, err, "Error loading feeds")
		return
	}
	comments, err := models.FindLatestComments(db, size)
	if err != nil {
		internalError(c, err, "Error loading feeds")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"restaurants": restaurants,
			"comments":    comments,
		},
	})
}

// GetTopRestaurants ranks restaurants by favorite count. The result is cached
// per viewer and dropped whenever a favorite or like changes.
func (server *Server) GetTopRestaurants(c *gin.Context) {
	ctx := c.Request.Context()
	viewer := httpctx.CurrentViewer(c)
	key := rankingCacheKey(topRestaurantsPrefix, viewer)

	var cards []aggregation.RestaurantCard
	if loadCached(ctx, key, &cards) {
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": cards})
		return
	}

	db := server.dbFor(c)
	restaurants, err := models.FindAllRestaurants(db)
	if err != nil {
		internalError(c, err, "Error loading restaurants")
		return
	}
	rows, err := restaurantRows(db, restaurants)
	if err != nil {
		internalError(c, err, "Error loading restaurants")
		return
	}

	cards = aggregation.TopRestaurants(rows, server.listing().TopN, viewer)
	storeCached(ctx, key, cards, server.listing().RankingCacheTTL)

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": cards})
}

// GetRestaurant counts a view and returns the restaurant with its comments
// and the viewer's favorite and like flags.
func (server *Server) GetRestaurant(c *gin.Context) {
	rid, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db := server.dbFor(c)
	viewer := httpctx.CurrentViewer(c)

	viewCounts, err := models.IncrementViewCount(db, rid)
	if errors.Is(err, models.ErrRestaurantNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "error": "Restaurant not found"})
		return
	}
	if err != nil {
		internalError(c, err, "Error loading restaurant")
		return
	}

	restaurant, err := models.FindRestaurantWithComments(db, rid)
	if err != nil {
		if errors.Is(err, models.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "error": "Restaurant not found"})
			return
		}
		internalError(c, err, "Error loading restaurant")
		return
	}
	restaurant.ViewCounts = viewCounts

	rows, err := restaurantRows(db, []models.Restaurant{*restaurant})
	if err != nil {
		internalError(c, err, "Error loading restaurant")
		return
	}
	card := aggregation.DecorateRestaurant(rows[0], viewer)

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"restaurant":     restaurant,
			"favoritedCount": card.FavoritedUsersCount,
			"isFavorited":    card.IsFavorited,
			"isLiked":        card.IsLiked,
		},
	})
}

// GetDashboard reports the counters of one restaurant without counting a view.
func (server *Server) GetDashboard(c *gin.Context) {
	rid, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db := server.dbFor(c)

	restaurant, err := models.FindRestaurantByID(db, rid)
	if err != nil {
		if errors.Is(err, models.ErrRestaurantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "error": "Restaurant not found"})
			return
		}
		internalError(c, err, "Error loading restaurant")
		return
	}
	commentCount, err := models.CountRestaurantComments(db, rid)
	if err != nil {
		internalError(c, err, "Error loading restaurant")
		return
	}
	favorited, err := models.FavoritedByIDs(db, []uint{rid})
	if err != nil {
		internalError(c, err, "Error loading restaurant")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"restaurant":     restaurant,
			"viewCounts":     restaurant.ViewCounts,
			"commentCount":   commentCount,
			"favoritedCount": aggregation.NewIDSet(favorited[rid]...).Len(),
		},
	})
}
