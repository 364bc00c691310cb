package contextkeys

// Custom type so keys never collide with other packages.
type contextKey string

// MemberIDContextKey is the key the session guards use to store the
// authenticated member id in the gin context.
const MemberIDContextKey = contextKey("memberID")
