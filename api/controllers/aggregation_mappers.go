package controllers

import (
	"Forkful/api/aggregation"
	"Forkful/api/models"

	"gorm.io/gorm"
)

// descriptionExcerpt is the card length of a restaurant description.
const descriptionExcerpt = 50

func restaurantIDs(restaurants []models.Restaurant) []uint {
	ids := make([]uint, len(restaurants))
	for i, r := range restaurants {
		ids[i] = r.ID
	}
	return ids
}

// restaurantRows loads favorite and like memberships for restaurants and
// converts them to aggregation input.
func restaurantRows(db *gorm.DB, restaurants []models.Restaurant) ([]aggregation.RestaurantRow, error) {
	ids := restaurantIDs(restaurants)
	favorited, err := models.FavoritedByIDs(db, ids)
	if err != nil {
		return nil, err
	}
	liked, err := models.LikedByIDs(db, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]aggregation.RestaurantRow, len(restaurants))
	for i, r := range restaurants {
		rows[i] = aggregation.RestaurantRow{
			ID:           r.ID,
			Name:         r.Name,
			Description:  aggregation.Excerpt(r.Description, descriptionExcerpt),
			Image:        r.Image,
			CategoryID:   r.CategoryID,
			CategoryName: r.Category.Name,
			ViewCounts:   r.ViewCounts,
			FavoritedBy:  aggregation.NewIDSet(favorited[r.ID]...),
			LikedBy:      aggregation.NewIDSet(liked[r.ID]...),
		}
	}
	return rows, nil
}

func restaurantCards(db *gorm.DB, restaurants []models.Restaurant, viewer aggregation.Viewer) ([]aggregation.RestaurantCard, error) {
	rows, err := restaurantRows(db, restaurants)
	if err != nil {
		return nil, err
	}
	cards := make([]aggregation.RestaurantCard, len(rows))
	for i, row := range rows {
		cards[i] = aggregation.DecorateRestaurant(row, viewer)
	}
	return cards, nil
}

// userRows loads followers for users and converts them to aggregation input.
func userRows(db *gorm.DB, users []models.User) ([]aggregation.UserRow, error) {
	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	followers, err := models.FollowerIDs(db, ids)
	if err != nil {
		return nil, err
	}

	rows := make([]aggregation.UserRow, len(users))
	for i, u := range users {
		rows[i] = aggregation.UserRow{
			ID:        u.ID,
			Name:      u.Name,
			Email:     u.Email,
			Image:     u.Image,
			Followers: aggregation.NewIDSet(followers[u.ID]...),
		}
	}
	return rows, nil
}

func userCards(db *gorm.DB, users []models.User, viewer aggregation.Viewer) ([]aggregation.UserCard, error) {
	rows, err := userRows(db, users)
	if err != nil {
		return nil, err
	}
	cards := make([]aggregation.UserCard, len(rows))
	for i, row := range rows {
		cards[i] = aggregation.DecorateUser(row, viewer)
	}
	return cards, nil
}

func commentRows(comments []models.Comment) []aggregation.CommentRow {
	rows := make([]aggregation.CommentRow, len(comments))
	for i, c := range comments {
		rows[i] = aggregation.CommentRow{
			RestaurantID:    c.RestaurantID,
			RestaurantName:  c.Restaurant.Name,
			RestaurantImage: c.Restaurant.Image,
		}
	}
	return rows
}
