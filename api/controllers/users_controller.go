package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"Forkful/api/aggregation"
	"Forkful/api/models"
	"Forkful/api/storage"
	"Forkful/api/utils/fileformat"
	"Forkful/api/utils/httpctx"

	"github.com/gin-gonic/gin"
)

const maxImageSize = 512_000

// GetTopUsers ranks users by follower count with the viewer's follow flag.
func (server *Server) GetTopUsers(c *gin.Context) {
	ctx := c.Request.Context()
	viewer := httpctx.CurrentViewer(c)
	key := rankingCacheKey(topUsersPrefix, viewer)

	var cards []aggregation.UserCard
	if loadCached(ctx, key, &cards) {
		c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": cards})
		return
	}

	db := server.dbFor(c)
	users, err := models.FindAllUsers(db)
	if err != nil {
		internalError(c, err, "Error loading users")
		return
	}
	rows, err := userRows(db, users)
	if err != nil {
		internalError(c, err, "Error loading users")
		return
	}

	cards = aggregation.TopUsers(rows, server.listing().TopN, viewer)
	storeCached(ctx, key, cards, server.listing().RankingCacheTTL)

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": cards})
}

// GetUser renders a profile: the user card, the restaurants the user
// commented on with per-restaurant counts, followers, followings and
// favorites.
func (server *Server) GetUser(c *gin.Context) {
	uid, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	db := server.dbFor(c)
	viewer := httpctx.CurrentViewer(c)

	user, err := models.FindUserByID(db, uid)
	if err != nil {
		if errors.Is(err, models.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": http.StatusNotFound, "error": "User not found"})
			return
		}
		internalError(c, err, "Error loading user")
		return
	}

	comments, err := models.FindUserComments(db, uid)
	if err != nil {
		internalError(c, err, "Error loading user")
		return
	}
	followers, err := models.FindFollowers(db, uid)
	if err != nil {
		internalError(c, err, "Error loading user")
		return
	}
	followings, err := models.FindFollowings(db, uid)
	if err != nil {
		internalError(c, err, "Error loading user")
		return
	}
	favorites, err := models.FindUserFavoriteRestaurants(db, uid)
	if err != nil {
		internalError(c, err, "Error loading user")
		return
	}

	followerIDs := make([]uint, len(followers))
	for i, f := range followers {
		followerIDs[i] = f.ID
	}
	card := aggregation.DecorateUser(aggregation.UserRow{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Image:     user.Image,
		Followers: aggregation.NewIDSet(followerIDs...),
	}, viewer)

	c.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"response": gin.H{
			"user":                 card,
			"commentCount":         len(comments),
			"restaurants":          aggregation.RollupComments(commentRows(comments)),
			"followers":            followers,
			"followings":           followings,
			"favoritedRestaurants": favorites,
		},
	})
}

// UpdateUser edits the caller's own profile: a required name and an optional
// image uploaded as multipart field "image".
func (server *Server) UpdateUser(c *gin.Context) {
	uid, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	tokenID, ok := httpctx.CurrentUserID(c)
	if !ok || tokenID != uid {
		c.JSON(http.StatusForbidden, gin.H{
			"status": http.StatusForbidden,
			"error":  "You can only edit your own profile",
		})
		return
	}

	user := models.User{Name: c.PostForm("name")}
	user.Prepare()
	if errorMessages := user.Validate("update"); len(errorMessages) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": http.StatusUnprocessableEntity,
			"error":  errorMessages,
		})
		return
	}

	if file, err := c.FormFile("image"); err == nil {
		if server.Uploader == nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status": http.StatusInternalServerError,
				"error":  "Image uploads are not configured",
			})
			return
		}
		if file.Size > maxImageSize {
			c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "error": "File too large (<500KB)"})
			return
		}
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "error": "Cannot open file"})
			return
		}
		buf, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "error": "Could not read file"})
			return
		}
		fileType := http.DetectContentType(buf)
		if !strings.HasPrefix(fileType, "image/") {
			c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "error": "Not an image"})
			return
		}

		square, err := storage.SquareJPEG(buf, storage.ProfileImageSize)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "error": "Unsupported image format"})
			return
		}

		key := "UserProfilePics/" + fileformat.UniqueFormat("profile.jpg")
		url, err := server.Uploader.Upload(c.Request.Context(), key, square, "image/jpeg")
		if err != nil {
			internalError(c, err, "Failed to upload image")
			return
		}
		user.Image = url
	}

	updated, err := user.UpdateProfile(server.dbFor(c), uid)
	if err != nil {
		internalError(c, err, "Cannot update profile, please try again later")
		return
	}
	invalidateTopUsers(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "response": updated})
}
