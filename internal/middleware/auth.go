package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Ka-few/Beauty-parlor-app/internal/domain"
	"github.com/Ka-few/Beauty-parlor-app/internal/models"
)

const (
	ContextCustomerID = "customerID"
	ContextCustomer   = "customer"
)

// TokenParser resolves a bearer token to a customer id.
type TokenParser interface {
	Parse(token string) (uint, error)
}

// CustomerLookup loads the customer behind a token.
type CustomerLookup interface {
	GetByID(ctx context.Context, id uint) (*models.Customer, error)
}

func AuthMiddleware(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing authorization header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header"})
			return
		}

		customerID, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(ContextCustomerID, customerID)
		c.Next()
	}
}

// AdminMiddleware must run after AuthMiddleware. The admin flag is read from
// the store on every request.
func AdminMiddleware(customers CustomerLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID, ok := CustomerID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		customer, err := customers.GetByID(c.Request.Context(), customerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
				return
			}
			zap.L().Error("admin lookup failed", zap.Uint("customer_id", customerID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}

		if !customer.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}

		c.Set(ContextCustomer, customer)
		c.Next()
	}
}

func CustomerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(ContextCustomerID)
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
