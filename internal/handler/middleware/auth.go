package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"comma-backend/internal/domain/employee"
	"comma-backend/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	jwtService *jwt.Service
}

const (
	ctxEmployeeIDKey   = "employee_id"
	ctxEmployeeRoleKey = "employee_role"
)

var roleHierarchy = map[employee.Role]int{
	employee.RoleStaff:   1,
	employee.RoleManager: 2,
	employee.RoleAdmin:   3,
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Access token required"},
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{"message": "Invalid or expired token"},
			})
			c.Abort()
			return
		}

		c.Set(ctxEmployeeIDKey, claims.EmployeeID)
		c.Set(ctxEmployeeRoleKey, employee.Role(claims.Role))
		c.Set("jwt_claims", map[string]any{
			"employee_id": strconv.FormatInt(claims.EmployeeID, 10),
			"role":        claims.Role,
		})
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole employee.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetEmployeeRole(c)
		if !ok {
			// Unexpected error: should be used after RequireAuth()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": gin.H{"message": "Internal server error"},
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": gin.H{"message": "Insufficient permissions"},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func hasMinimumRole(role, minRole employee.Role) bool {
	level, exists := roleHierarchy[role]
	minLevel, minExists := roleHierarchy[minRole]
	return exists && minExists && level >= minLevel
}

func GetEmployeeID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxEmployeeIDKey)
	if !exists {
		return 0, false
	}

	id, ok := v.(int64)
	return id, ok
}

func GetEmployeeRole(c *gin.Context) (employee.Role, bool) {
	v, exists := c.Get(ctxEmployeeRoleKey)
	if !exists {
		return "", false
	}

	role, ok := v.(employee.Role)
	return role, ok
}
