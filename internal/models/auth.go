package models

// TokenPayload is the verified content of an admin bearer token
type TokenPayload struct {
	Subject string
}
