package formaterror

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	cases := map[string]map[string]string{
		`pq: duplicate key value violates unique constraint "users_email_key" (email)`: {"Taken_email": "Email Already Taken"},
		"UNIQUE constraint failed: users.email":                                    {"Taken_email": "Email Already Taken"},
		"crypto/bcrypt: hashedPassword is not the hash of the given password":      {"Incorrect_password": "Incorrect Password"},
		"record not found":                                                          {"No_record": "No Record Found"},
		"something else":                                                            {"Incorrect_details": "Incorrect Details"},
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatError(in), in)
	}
}
