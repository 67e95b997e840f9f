package formaterror

import "strings"

// FormatError turns a persistence or sign-in error into the messages shown
// to the client.
func FormatError(errString string) map[string]string {
	errorMessages := make(map[string]string)

	if strings.Contains(errString, "name") && strings.Contains(errString, "duplicate") {
		errorMessages["Taken_name"] = "Name Already Taken"
	}
	if strings.Contains(errString, "email") && (strings.Contains(errString, "duplicate") || strings.Contains(errString, "UNIQUE")) {
		errorMessages["Taken_email"] = "Email Already Taken"
	}
	if strings.Contains(errString, "hashedPassword") {
		errorMessages["Incorrect_password"] = "Incorrect Password"
	}
	if strings.Contains(errString, "record not found") {
		errorMessages["No_record"] = "No Record Found"
	}

	if len(errorMessages) > 0 {
		return errorMessages
	}

	errorMessages["Incorrect_details"] = "Incorrect Details"
	return errorMessages
}
