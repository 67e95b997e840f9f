package seed

import (
	"testing"

	"Forkful/api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestLoad(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Load(db))

	var count int64
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(len(users)), count)
	db.Model(&models.Restaurant{}).Count(&count)
	assert.Equal(t, int64(len(categories)*restaurantsPerCategory), count)
	db.Model(&models.Comment{}).Count(&count)
	assert.Equal(t, int64(len(categories)*restaurantsPerCategory), count)

	root, err := models.FindUserByEmail(db, "root@example.com")
	require.NoError(t, err)
	assert.True(t, root.IsAdmin)

	// loading twice starts from scratch
	require.NoError(t, Load(db))
	db.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(len(users)), count)
}
