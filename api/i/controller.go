// Package i holds the contract between the router and its controllers.
package i

import "github.com/gin-gonic/gin"

// Controller registers its routes on the two /v1 groups built by the router.
// Routes added through RegisterProtected run behind the bearer-token check
// and can read the caller with identity.UserID.
type Controller interface {
	RegisterPublic(*gin.RouterGroup)
	RegisterProtected(*gin.RouterGroup)
}
