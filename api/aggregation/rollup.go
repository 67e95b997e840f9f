package aggregation

// CommentRow is one of a user's comments joined to the restaurant it targets.
type CommentRow struct {
	RestaurantID    uint
	RestaurantName  string
	RestaurantImage string
}

// RestaurantRollup summarises how often a user commented on one restaurant.
type RestaurantRollup struct {
	RestaurantID uint   `json:"RestaurantId"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Count        int    `json:"count"`
}

// RollupComments collapses a comment history into one record per restaurant,
// in the order each restaurant first appears. The name and image of the first
// comment seen for a restaurant are kept.
func RollupComments(comments []CommentRow) []RestaurantRollup {
	index := make(map[uint]int, len(comments))
	rollups := make([]RestaurantRollup, 0, len(comments))

	for _, c := range comments {
		if i, ok := index[c.RestaurantID]; ok {
			rollups[i].Count++
			continue
		}
		index[c.RestaurantID] = len(rollups)
		rollups = append(rollups, RestaurantRollup{
			RestaurantID: c.RestaurantID,
			Name:         c.RestaurantName,
			Image:        c.RestaurantImage,
			Count:        1,
		})
	}
	return rollups
}
