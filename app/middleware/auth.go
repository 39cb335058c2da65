package appMiddleware

type contextKey string

const UserIDKey contextKey = "userID"
const UsernameKey contextKey = "username"
