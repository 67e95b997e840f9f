package aggregation

import (
	"cmp"
	"slices"
)

// DefaultTopN is used when a ranking is requested with a non-positive size.
const DefaultTopN = 10

// Candidate is one entity competing in a ranking. Members is the relation
// whose size is the popularity count.
type Candidate[T any] struct {
	ID      uint
	Item    T
	Members IDSet
}

// Ranked is a ranking entry as handed to the presentation layer.
type Ranked[T any] struct {
	Item           T
	Count          int
	ViewerIsMember bool
}

// TopN orders candidates by member count, highest first, and keeps the first
// n. Equal counts are ordered by ascending ID so the result does not depend
// on the order the rows were loaded in. The input slice is left untouched.
func TopN[T any](candidates []Candidate[T], n int, viewer Viewer) []Ranked[T] {
	if n <= 0 {
		n = DefaultTopN
	}

	sorted := slices.Clone(candidates)
	slices.SortStableFunc(sorted, func(a, b Candidate[T]) int {
		if c := cmp.Compare(b.Members.Len(), a.Members.Len()); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	ranked := make([]Ranked[T], len(sorted))
	for i, cand := range sorted {
		ranked[i] = Ranked[T]{
			Item:           cand.Item,
			Count:          cand.Members.Len(),
			ViewerIsMember: IsMember(viewer, cand.Members),
		}
	}
	return ranked
}

// RestaurantRow is the persistence-independent shape of a restaurant with
// its favorite and like relations already loaded.
type RestaurantRow struct {
	ID           uint
	Name         string
	Description  string
	Image        string
	CategoryID   uint
	CategoryName string
	ViewCounts   int64
	FavoritedBy  IDSet
	LikedBy      IDSet
}

// RestaurantCard is the restaurant view-model used by listings and the
// top-restaurants page.
type RestaurantCard struct {
	ID                  uint   `json:"id"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	Image               string `json:"image"`
	CategoryID          uint   `json:"CategoryId"`
	CategoryName        string `json:"categoryName"`
	FavoritedUsersCount int    `json:"count"`
	IsFavorited         bool   `json:"isFavorited"`
	IsLiked             bool   `json:"isLiked"`
}

// DecorateRestaurant resolves the viewer's flags for a single restaurant.
func DecorateRestaurant(row RestaurantRow, viewer Viewer) RestaurantCard {
	return RestaurantCard{
		ID:                  row.ID,
		Name:                row.Name,
		Description:         row.Description,
		Image:               row.Image,
		CategoryID:          row.CategoryID,
		CategoryName:        row.CategoryName,
		FavoritedUsersCount: row.FavoritedBy.Len(),
		IsFavorited:         IsMember(viewer, row.FavoritedBy),
		IsLiked:             IsMember(viewer, row.LikedBy),
	}
}

// TopRestaurants ranks restaurants by how many users favorited them.
func TopRestaurants(rows []RestaurantRow, n int, viewer Viewer) []RestaurantCard {
	candidates := make([]Candidate[RestaurantRow], len(rows))
	for i, row := range rows {
		candidates[i] = Candidate[RestaurantRow]{ID: row.ID, Item: row, Members: row.FavoritedBy}
	}

	ranked := TopN(candidates, n, viewer)
	cards := make([]RestaurantCard, len(ranked))
	for i, r := range ranked {
		cards[i] = DecorateRestaurant(r.Item, viewer)
	}
	return cards
}

// UserRow is the persistence-independent shape of a user with followers loaded.
type UserRow struct {
	ID        uint
	Name      string
	Email     string
	Image     string
	Followers IDSet
}

// UserCard is the user view-model used by the top-users page and profiles.
type UserCard struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Image         string `json:"image"`
	FollowerCount int    `json:"count"`
	IsFollowed    bool   `json:"isFollowed"`
}

func DecorateUser(row UserRow, viewer Viewer) UserCard {
	return UserCard{
		ID:            row.ID,
		Name:          row.Name,
		Email:         row.Email,
		Image:         row.Image,
		FollowerCount: row.Followers.Len(),
		IsFollowed:    IsMember(viewer, row.Followers),
	}
}

// TopUsers ranks users by follower count.
func TopUsers(rows []UserRow, n int, viewer Viewer) []UserCard {
	candidates := make([]Candidate[UserRow], len(rows))
	for i, row := range rows {
		candidates[i] = Candidate[UserRow]{ID: row.ID, Item: row, Members: row.Followers}
	}

	ranked := TopN(candidates, n, viewer)
	cards := make([]UserCard, len(ranked))
	for i, r := range ranked {
		cards[i] = DecorateUser(r.Item, viewer)
	}
	return cards
}
