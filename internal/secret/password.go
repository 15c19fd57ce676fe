package secret

const minPasswordLength = 8

// Password keeps three first and two last symbols of long password
func Password(password string) string {
	runes := []rune(password)
	if len(runes) < minPasswordLength {
		for i := range runes {
			runes[i] = '*'
		}

		return string(runes)
	}
	for i := 3; i < len(runes)-2; i++ {
		runes[i] = '*'
	}

	return string(runes)
}
