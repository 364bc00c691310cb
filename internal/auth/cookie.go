package auth

// Cookie names shared by the auth handlers that set them and the session
// guards that read them. The access cookie is readable by the frontend, the
// refresh cookie is httpOnly.
const (
	SessionCookieName = "joonbee-token"
	RefreshCookieName = "joonbee-token-refresh"
)
