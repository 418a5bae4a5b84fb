package domain

// Session is one authenticated session, stored in redis keyed by token. The
// device fingerprint doubles as the user identity; there is no account system.
type Session struct {
	SessionId  string     `json:"sessionId"`
	UserId     string     `json:"userId"`
	Token      string     `json:"token"`
	ClientInfo ClientInfo `json:"clientInfo"`
}
