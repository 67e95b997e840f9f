package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicURL(t *testing.T) {
	assert.Equal(t,
		"https://forkful.s3.us-east-2.amazonaws.com/RestaurantImages/a.png",
		PublicURL("forkful", "us-east-2", "RestaurantImages/a.png"))
}

func TestNewS3UploaderRequiresBucket(t *testing.T) {
	_, err := NewS3Uploader(context.Background(), S3Config{Region: "us-east-2"})
	assert.ErrorIs(t, err, ErrNoBucket)
}
