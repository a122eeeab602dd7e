package models

// Mode defines the transformation requested from the athenc server.
// The value selects the target route and every user-facing label pair
// shown by the client.
type Mode int

const (
	// Encrypt sends the selected file to the /encrypt route and expects
	// an encrypted blob back.
	Encrypt Mode = 1

	// Decrypt sends the selected file to the /decrypt route and expects
	// the original plaintext blob back.
	Decrypt Mode = 2
)

// Endpoint returns the server route for the mode.
func (m Mode) Endpoint() string {
	if m == Decrypt {
		return "/decrypt"
	}
	return "/encrypt"
}

// Title returns the screen header shown while the mode is active.
func (m Mode) Title() string {
	if m == Decrypt {
		return "РАСШИФРОВАТЬ ФАЙЛ"
	}
	return "ЗАШИФРОВАТЬ ФАЙЛ"
}

// Action returns the verb used in submit labels and result notifications.
func (m Mode) Action() string {
	if m == Decrypt {
		return "Расшифровка"
	}
	return "Шифрование"
}

func (m Mode) String() string {
	if m == Decrypt {
		return "decrypt"
	}
	return "encrypt"
}
