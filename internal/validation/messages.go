package validation

var fieldLabels = map[string]string{
	FieldFirstName: "First name",
	FieldLastName:  "Last name",
}

func message(field, tag, countryCode string) string {
	switch field {
	case FieldFirstName, FieldLastName:
		label := fieldLabels[field]
		switch tag {
		case "required":
			return label + " is required"
		case "personname":
			return label + " can only contain letters and spaces"
		default:
			return label + " must be at least 2 characters"
		}
	case FieldEmail:
		if tag == "required" {
			return "Email is required"
		}
		return "Enter a valid email address"
	case FieldPhoneNumber:
		if tag == "required" {
			return "Phone number is required"
		}
		return "Enter a valid phone number for " + countryCode
	}

	return "Invalid value"
}
