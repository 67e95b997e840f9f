package seed

import (
	"fmt"

	"Forkful/api/logging"
	"Forkful/api/models"

	"gorm.io/gorm"
)

var users = []models.User{
	{Name: "root", Email: "root@example.com", Password: "12345678", IsAdmin: true},
	{Name: "user1", Email: "user1@example.com", Password: "12345678"},
	{Name: "user2", Email: "user2@example.com", Password: "12345678"},
}

var categories = []string{"Chinese", "Japanese", "Italian", "Mexican", "Vegetarian", "American", "Fusion"}

const restaurantsPerCategory = 7

// Load recreates every table and fills it with development data.
func Load(db *gorm.DB) error {
	log := logging.L()

	if err := db.Migrator().DropTable(
		&models.ResetPassword{},
		&models.Followship{},
		&models.Like{},
		&models.Favorite{},
		&models.Comment{},
		&models.Restaurant{},
		&models.User{},
		&models.Category{},
	); err != nil {
		return fmt.Errorf("cannot drop tables: %w", err)
	}
	if err := models.Migrate(db); err != nil {
		return fmt.Errorf("cannot migrate tables: %w", err)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		seededUsers := make([]models.User, len(users))
		for i := range users {
			u := users[i]
			if _, err := u.SaveUser(tx); err != nil {
				return fmt.Errorf("cannot seed users table: %w", err)
			}
			seededUsers[i] = u
		}

		var restaurants []models.Restaurant
		for _, name := range categories {
			category := models.Category{Name: name}
			if _, err := category.SaveCategory(tx); err != nil {
				return fmt.Errorf("cannot seed categories table: %w", err)
			}
			for n := 1; n <= restaurantsPerCategory; n++ {
				r := models.Restaurant{
					Name:         fmt.Sprintf("%s Kitchen #%d", name, n),
					Tel:          fmt.Sprintf("(02) 2%03d-%04d", len(restaurants), n*37),
					Address:      fmt.Sprintf("%d Market Street", 100+len(restaurants)),
					OpeningHours: "11:00",
					Description:  fmt.Sprintf("A neighbourhood %s place serving seasonal dishes and house specials.", name),
					Image:        fmt.Sprintf("https://loremflickr.com/320/240/restaurant,food/?lock=%d", len(restaurants)+1),
					CategoryID:   category.ID,
				}
				if _, err := r.SaveRestaurant(tx); err != nil {
					return fmt.Errorf("cannot seed restaurants table: %w", err)
				}
				restaurants = append(restaurants, r)
			}
		}

		for i, r := range restaurants {
			author := seededUsers[i%len(seededUsers)]
			comment := models.Comment{
				Text:         fmt.Sprintf("Visited %s, would come back.", r.Name),
				UserID:       author.ID,
				RestaurantID: r.ID,
			}
			if _, err := comment.SaveComment(tx); err != nil {
				return fmt.Errorf("cannot seed comments table: %w", err)
			}
			if i%3 == 0 {
				if _, err := models.AddFavorite(tx, author.ID, r.ID); err != nil {
					return fmt.Errorf("cannot seed favorites table: %w", err)
				}
			}
		}

		if _, err := models.Follow(tx, seededUsers[1].ID, seededUsers[2].ID); err != nil {
			return fmt.Errorf("cannot seed followships table: %w", err)
		}

		log.Info().
			Int("users", len(seededUsers)).
			Int("categories", len(categories)).
			Int("restaurants", len(restaurants)).
			Msg("seed data loaded")
		return nil
	})
}
