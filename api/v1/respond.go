package v1

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/projectflow-simple/apperrors"
)

// respondError converts any service or store error into the uniform
// {"error": message} body with the mapped status. Nothing else crosses
// the handler boundary.
func respondError(c *gin.Context, err error) {
	status := apperrors.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("Store failure on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// MethodNotAllowed is the engine's NoMethod handler.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

// NotFoundRoute is the engine's NoRoute handler.
func NotFoundRoute(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}
