package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/apperror"
	"github.com/KinzixInfotech/edutemp-sub017/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Gin context keys populated by AuthMiddleware.
const (
	CtxUserID     = "user_id"
	CtxSchoolID   = "school_id"
	CtxEmployeeID = "employee_id"
	CtxRole       = "role"
)

var (
	errInvalidToken = apperror.New(apperror.CodeUnauthorized, "Invalid token", http.StatusUnauthorized)
	errTokenExpired = apperror.New(apperror.CodeUnauthorized, "Token expired", http.StatusUnauthorized)
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}

// AuthMiddleware validates an HS256 bearer token (or access_token cookie) and
// copies its identity claims into the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, apperror.New(apperror.CodeUnauthorized, "Token not found", http.StatusUnauthorized))
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, errTokenExpired)
				return
			}
			abortWith(c, errInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, errInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		if userID == "" {
			abortWith(c, apperror.New(apperror.CodeUnauthorized, "User ID not found in token", http.StatusUnauthorized))
			return
		}

		schoolID, _ := claims["school_id"].(string)
		if schoolID == "" {
			abortWith(c, apperror.New(apperror.CodeUnauthorized, "School ID not found in token", http.StatusUnauthorized))
			return
		}

		// Staff without an employee record (e.g. external auditors) have no employee_id.
		employeeID, _ := claims["employee_id"].(string)
		role, _ := claims["role"].(string)

		c.Set(CtxUserID, userID)
		c.Set(CtxSchoolID, schoolID)
		c.Set(CtxEmployeeID, employeeID)
		c.Set(CtxRole, role)

		c.Next()
	}
}
