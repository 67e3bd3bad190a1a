package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"fleamarket_backend/internal/logger"
	"fleamarket_backend/internal/models"
	"fleamarket_backend/internal/services"
	"fleamarket_backend/pkg/apperrors"
	"fleamarket_backend/pkg/contextkeys"
)

// AuthMiddleware проверяет access токен и кладет пользователя в контекст.
// Refresh токен сюда не проходит: назначение проверяется в сервисе.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrUnauthenticated)
			c.Abort()
			return
		}

		user, err := authService.ResolveCaller(token)
		if err != nil {
			apperrors.HandleError(c, err)
			c.Abort()
			return
		}

		c.Set(string(contextkeys.CurrentUserKey), user)
		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// AdminMiddleware пускает дальше только администраторов.
// Ставится после AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser возвращает пользователя, положенного AuthMiddleware.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(string(contextkeys.CurrentUserKey))
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return "", false
	}
	return token, true
}
