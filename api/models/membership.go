package models

import (
	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"
)

type edgeRow struct {
	OwnerID  uint
	MemberID uint
}

// loadEdges groups member ids by owner id for one edge table. A nil owners
// slice loads every edge of the table.
func loadEdges(db *gorm.DB, table, ownerCol, memberCol string, owners []uint) (map[uint][]uint, error) {
	if owners != nil && len(owners) == 0 {
		return map[uint][]uint{}, nil
	}

	query := sq.Select(ownerCol+" AS owner_id", memberCol+" AS member_id").
		From(table).
		OrderBy(ownerCol, memberCol)
	if owners != nil {
		query = query.Where(sq.Eq{ownerCol: owners})
	}
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []edgeRow
	if err := db.Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[uint][]uint)
	for _, r := range rows {
		out[r.OwnerID] = append(out[r.OwnerID], r.MemberID)
	}
	return out, nil
}

// FavoritedByIDs maps restaurant id to the ids of users who favorited it.
func FavoritedByIDs(db *gorm.DB, restaurantIDs []uint) (map[uint][]uint, error) {
	return loadEdges(db, "favorites", "restaurant_id", "user_id", restaurantIDs)
}

// LikedByIDs maps restaurant id to the ids of users who liked it.
func LikedByIDs(db *gorm.DB, restaurantIDs []uint) (map[uint][]uint, error) {
	return loadEdges(db, "likes", "restaurant_id", "user_id", restaurantIDs)
}

// FollowerIDs maps user id to the ids of its followers.
func FollowerIDs(db *gorm.DB, userIDs []uint) (map[uint][]uint, error) {
	return loadEdges(db, "followships", "following_id", "follower_id", userIDs)
}
