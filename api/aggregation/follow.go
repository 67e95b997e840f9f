package aggregation

import "errors"

var ErrSelfFollow = errors.New("cannot follow yourself")

// ValidateFollow rejects a followship whose two ends are the same user.
func ValidateFollow(followerID, followingID uint) error {
	if followerID == followingID {
		return ErrSelfFollow
	}
	return nil
}

// Excerpt shortens s to at most max runes.
func Excerpt(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
