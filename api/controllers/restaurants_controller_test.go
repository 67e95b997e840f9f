package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"Forkful/api/config"
	"Forkful/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRestaurantsPaginationAndCategory(t *testing.T) {
	server := setupServer(t)
	db := server.DB

	asian := createCategory(t, db, "Asian")
	diner := createCategory(t, db, "Diner")
	for i := 0; i < 12; i++ {
		createRestaurant(t, db, fmt.Sprintf("asian-%02d", i), asian.ID)
	}
	for i := 0; i < 3; i++ {
		createRestaurant(t, db, fmt.Sprintf("diner-%02d", i), diner.ID)
	}

	status, body := doJSON(t, server, http.MethodGet, "/api/v1/restaurants", nil, "")
	require.Equal(t, http.StatusOK, status)
	resp := responseMap(t, body)
	assert.Len(t, resp["restaurants"], 10)
	assert.Len(t, resp["categories"], 2)
	pagination := resp["pagination"].(map[string]interface{})
	assert.EqualValues(t, 1, pagination["page"])
	assert.EqualValues(t, 2, pagination["pages"])
	assert.EqualValues(t, 1, pagination["prev"])
	assert.EqualValues(t, 2, pagination["next"])
	assert.Equal(t, []interface{}{float64(1), float64(2)}, pagination["totalPage"])

	status, body = doJSON(t, server, http.MethodGet, "/api/v1/restaurants?page=2", nil, "")
	require.Equal(t, http.StatusOK, status)
	resp = responseMap(t, body)
	assert.Len(t, resp["restaurants"], 5)
	assert.EqualValues(t, 2, resp["pagination"].(map[string]interface{})["next"])

	status, body = doJSON(t, server, http.MethodGet, path("/api/v1/restaurants?categoryId=%d", diner.ID), nil, "")
	require.Equal(t, http.StatusOK, status)
	resp = responseMap(t, body)
	cards := resp["restaurants"].([]interface{})
	require.Len(t, cards, 3)
	assert.EqualValues(t, diner.ID, resp["categoryId"])
	for _, c := range cards {
		card := c.(map[string]interface{})
		assert.Equal(t, "Diner", card["categoryName"])
		assert.EqualValues(t, diner.ID, card["CategoryId"])
	}
	assert.EqualValues(t, 1, resp["pagination"].(map[string]interface{})["pages"])

	status, body = doJSON(t, server, http.MethodGet, "/api/v1/restaurants?page=9", nil, "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, responseMap(t, body)["restaurants"])
}

func TestGetRestaurantsUsesConfiguredPageSize(t *testing.T) {
	server := setupServer(t)
	server.Config = &config.Config{Listing: config.Listing{PageSize: 4}}
	category := createCategory(t, server.DB, "Tapas")
	for i := 0; i < 9; i++ {
		createRestaurant(t, server.DB, fmt.Sprintf("tapas-%02d", i), category.ID)
	}

	_, body := doJSON(t, server, http.MethodGet, "/api/v1/restaurants?page=2", nil, "")
	resp := responseMap(t, body)
	cards := resp["restaurants"].([]interface{})
	require.Len(t, cards, 4)
	assert.Equal(t, "tapas-04", cards[0].(map[string]interface{})["name"])
	pagination := resp["pagination"].(map[string]interface{})
	assert.EqualValues(t, 3, pagination["pages"])
	assert.EqualValues(t, 1, pagination["prev"])
	assert.EqualValues(t, 3, pagination["next"])

	_, body = doJSON(t, server, http.MethodGet, "/api/v1/restaurants?page=3", nil, "")
	assert.Len(t, responseMap(t, body)["restaurants"], 1)

	// a non-positive size falls back to the default page size
	server.Config.Listing.PageSize = 0
	_, body = doJSON(t, server, http.MethodGet, "/api/v1/restaurants", nil, "")
	resp = responseMap(t, body)
	assert.Len(t, resp["restaurants"], 9)
	assert.EqualValues(t, 1, resp["pagination"].(map[string]interface{})["pages"])
}

func TestGetRestaurantsExcerptsDescription(t *testing.T) {
	server := setupServer(t)
	category := createCategory(t, server.DB, "Cafe")
	r := models.Restaurant{Name: "long", Description: strings.Repeat("好", 80), CategoryID: category.ID}
	_, err := r.SaveRestaurant(server.DB)
	require.NoError(t, err)

	_, body := doJSON(t, server, http.MethodGet, "/api/v1/restaurants", nil, "")
	card := responseMap(t, body)["restaurants"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, strings.Repeat("好", 50), card["description"])
}

func TestGetRestaurantsViewerFlags(t *testing.T) {
	server := setupServer(t)
	db := server.DB
	viewer := createUser(t, db, "viewer", false)
	category := createCategory(t, db, "Bistro")
	fav := createRestaurant(t, db, "fav", category.ID)
	createRestaurant(t, db, "other", category.ID)

	_, err := models.AddFavorite(db, viewer.ID, fav.ID)
	require.NoError(t, err)
	_, err = models.AddLike(db, viewer.ID, fav.ID)
	require.NoError(t, err)

	flags := func(token string) map[uint][2]bool {
		_, body := doJSON(t, server, http.MethodGet, "/api/v1/restaurants", nil, token)
		out := map[uint][2]bool{}
		for _, c := range responseMap(t, body)["restaurants"].([]interface{}) {
			card := c.(map[string]interface{})
			out[idOf(card)] = [2]bool{card["isFavorited"].(bool), card["isLiked"].(bool)}
		}
		return out
	}

	withViewer := flags(tokenFor(t, viewer))
	assert.Equal(t, [2]bool{true, true}, withViewer[fav.ID])
	for id, f := range withViewer {
		if id != fav.ID {
			assert.Equal(t, [2]bool{false, false}, f)
		}
	}

	for _, f := range flags("") {
		assert.Equal(t, [2]bool{false, false}, f)
	}
}

func TestGetRestaurantIncrementsViewCount(t *testing.T) {
	server := setupServer(t)
	db := server.DB
	user := createUser(t, db, "eater", false)
	category := createCategory(t, db, "Ramen")
	r := createRestaurant(t, db, "noodles", category.ID)

	comment := models.Comment{Text: "rich broth", UserID: user.ID, RestaurantID: r.ID}
	_, err := comment.SaveComment(db)
	require.NoError(t, err)

	for want := 1; want <= 2; want++ {
		status, body := doJSON(t, server, http.MethodGet, path("/api/v1/restaurants/%d", r.ID), nil, "")
		require.Equal(t, http.StatusOK, status)
		resp := responseMap(t, body)
		restaurant := resp["restaurant"].(map[string]interface{})
		assert.EqualValues(t, want, restaurant["viewCounts"])
		assert.Equal(t, "Ramen", restaurant["Category"].(map[string]interface{})["name"])
		comments := restaurant["Comments"].([]interface{})
		require.Len(t, comments, 1)
		assert.Equal(t, "eater", comments[0].(map[string]interface{})["User"].(map[string]interface{})["name"])
		assert.False(t, resp["isFavorited"].(bool))
	}

	stored, err := models.FindRestaurantByID(db, r.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stored.ViewCounts)

	status, _ := doJSON(t, server, http.MethodGet, "/api/v1/restaurants/999", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = doJSON(t, server, http.MethodGet, "/api/v1/restaurants/abc", nil, "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetTopRestaurants(t *testing.T) {
	server := setupServer(t)
	db := server.DB
	category := createCategory(t, db, "Grill")

	users := make([]models.User, 4)
	for i := range users {
		users[i] = createUser(t, db, fmt.Sprintf("u%d", i), false)
	}
	a := createRestaurant(t, db, "a", category.ID)
	b := createRestaurant(t, db, "b", category.ID)
	c := createRestaurant(t, db, "c", category.ID)
	for i := 0; i < 3; i++ {
		_, err := models.AddFavorite(db, users[i].ID, c.ID)
		require.NoError(t, err)
	}
	_, err := models.AddFavorite(db, users[0].ID, b.ID)
	require.NoError(t, err)
	_, err = models.AddFavorite(db, users[1].ID, a.ID)
	require.NoError(t, err)

	status, body := doJSON(t, server, http.MethodGet, "/api/v1/restaurants/top", nil, tokenFor(t, users[0]))
	require.Equal(t, http.StatusOK, status)
	cards := responseList(t, body)
	require.Len(t, cards, 3)

	first := cards[0].(map[string]interface{})
	assert.EqualValues(t, c.ID, idOf(first))
	assert.EqualValues(t, 3, first["count"])
	assert.True(t, first["isFavorited"].(bool))

	// a and b tie on one favorite; the lower id wins
	assert.EqualValues(t, a.ID, idOf(cards[1]))
	assert.False(t, cards[1].(map[string]interface{})["isFavorited"].(bool))
	assert.EqualValues(t, b.ID, idOf(cards[2]))
	assert.True(t, cards[2].(map[string]interface{})["isFavorited"].(bool))

	_, body = doJSON(t, server, http.MethodGet, "/api/v1/restaurants/top", nil, "")
	for _, card := range responseList(t, body) {
		assert.False(t, card.(map[string]interface{})["isFavorited"].(bool))
	}
}

func TestGetTopRestaurantsCapsAtTen(t *testing.T) {
	server := setupServer(t)
	category := createCategory(t, server.DB, "Pizza")
	for i := 0; i < 13; i++ {
		createRestaurant(t, server.DB, fmt.Sprintf("p%d", i), category.ID)
	}

	_, body := doJSON(t, server, http.MethodGet, "/api/v1/restaurants/top", nil, "")
	assert.Len(t, responseList(t, body), 10)
}

func TestGetDashboard(t *testing.T) {
	server := setupServer(t)
	db := server.DB
	user := createUser(t, db, "critic", false)
	category := createCategory(t, db, "Tapas")
	r := createRestaurant(t, db, "tapas", category.ID)

	for _, text := range []string{"good", "better"} {
		c := models.Comment{Text: text, UserID: user.ID, RestaurantID: r.ID}
		_, err := c.SaveComment(db)
		require.NoError(t, err)
	}
	_, err := models.AddFavorite(db, user.ID, r.ID)
	require.NoError(t, err)
	_, err = models.IncrementViewCount(db, r.ID)
	require.NoError(t, err)

	status, body := doJSON(t, server, http.MethodGet, path("/api/v1/restaurants/%d/dashboard", r.ID), nil, "")
	require.Equal(t, http.StatusOK, status)
	resp := responseMap(t, body)
	assert.EqualValues(t, 1, resp["viewCounts"])
	assert.EqualValues(t, 2, resp["commentCount"])
	assert.EqualValues(t, 1, resp["favoritedCount"])

	// the dashboard itself is not a view
	stored, err := models.FindRestaurantByID(db, r.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stored.ViewCounts)

	status, _ = doJSON(t, server, http.MethodGet, "/api/v1/restaurants/404/dashboard", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestGetFeeds(t *testing.T) {
	server := setupServer(t)
	db := server.DB
	user := createUser(t, db, "feeder", false)
	category := createCategory(t, db, "Deli")

	var last models.Restaurant
	for i := 0; i < 12; i++ {
		last = createRestaurant(t, db, fmt.Sprintf("deli-%d", i), category.ID)
		c := models.Comment{Text: fmt.Sprintf("comment %d", i), UserID: user.ID, RestaurantID: last.ID}
		_, err := c.SaveComment(db)
		require.NoError(t, err)
	}

	status, body := doJSON(t, server, http.MethodGet, "/api/v1/restaurants/feeds", nil, "")
	require.Equal(t, http.StatusOK, status)
	resp := responseMap(t, body)
	restaurants := resp["restaurants"].([]interface{})
	comments := resp["comments"].([]interface{})
	require.Len(t, restaurants, 10)
	require.Len(t, comments, 10)

	assert.EqualValues(t, last.ID, idOf(restaurants[0]))
	newest := comments[0].(map[string]interface{})
	assert.Equal(t, "comment 11", newest["text"])
	assert.Equal(t, "feeder", newest["User"].(map[string]interface{})["name"])
	assert.Equal(t, last.Name, newest["Restaurant"].(map[string]interface{})["name"])
}
