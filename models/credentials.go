package models

// Credentials carry the verified caller identity. Authentication is an
// external collaborator: the engine takes the identity as a precondition and
// never validates it itself.
type Credentials struct {
	UserId string
}
