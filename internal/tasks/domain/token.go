package domain

// TokenPair is what the auth endpoints return: a short-lived access token and
// a long-lived refresh token, both stateless signed JWTs. Nothing server-side
// backs them; logout is purely the client discarding its copy.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
