package middleware

import "github.com/gin-gonic/gin"

const callerIDKey = contextKey("callerID")

// GetCallerIDFromContext retrieves the authenticated caller's ID from the Gin
// context. It returns the ID and a boolean indicating if it was found.
func GetCallerIDFromContext(c *gin.Context) (string, bool) {
	callerVal, exists := c.Get(string(callerIDKey))
	if !exists {
		// check in the request context as well
		v := c.Request.Context().Value(callerIDKey)
		if v != nil {
			return v.(string), true
		}
		return "", false
	}

	callerID, ok := callerVal.(string)
	if !ok {
		return "", false
	}

	return callerID, true
}
